package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical transaction date format (ISO 8601 calendar date)
const DateLayout = time.DateOnly

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseDate parses an ISO 8601 date or date-time. Values without a zone are
// interpreted as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO 8601 date: %q", value)
}

// SameMonth reports whether a and b fall in the same calendar month of the same year
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
