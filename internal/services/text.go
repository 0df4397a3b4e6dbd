package services

import "strings"

// optionalText trims a value and maps a blank result to nil, the stored form
// of "no value" for text columns.
func optionalText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// textOrDefault trims a value and falls back to a default when blank. Used
// to fill stage/status on create; stored values are otherwise unconstrained.
func textOrDefault(value, fallback string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = fallback
	}
	return &trimmed
}
