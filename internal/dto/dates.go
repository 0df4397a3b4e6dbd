package dto

import "time"

// DateFormat is the wire format for all dates. null stands for "no date".
const DateFormat = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(DateFormat)
	return &formatted
}
