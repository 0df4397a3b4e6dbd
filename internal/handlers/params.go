package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freelanceflow/freelance-flow-api/internal/dto"
)

// parseIDParam reads a numeric path parameter. A non-numeric id can never
// match a row, so callers report it as not found.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func parseDate(value string) (*time.Time, error) {
	t, err := time.Parse(dto.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// textPatch returns the raw text of a patch field when it is present in the
// body. JSON null and non-string values count as blank, which downstream
// stores as NULL.
func textPatch(body map[string]any, field string) *string {
	value, present := body[field]
	if !present {
		return nil
	}
	s, _ := value.(string)
	return &s
}

// datePatch reports how a date field was supplied: absent (all zero values),
// cleared (null or blank), or set to a value that must parse as an ISO date.
func datePatch(body map[string]any, field string) (set *time.Time, clear bool, err error) {
	value, present := body[field]
	if !present {
		return nil, false, nil
	}

	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, true, nil
	}

	t, err := parseDate(s)
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}
