package huhforms

import (
	"fmt"
	"strings"
	"time"
)

// DueLayout is the format the due date field accepts and displays
const DueLayout = "2006-01-02 15:04"

const dateOnlyLayout = "2006-01-02"

// ParseDue parses the due date field in loc.
// Empty input means no due date; a bare date means the end of that day.
func ParseDue(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(DueLayout, s, loc); err == nil {
		return &t, nil
	}
	if d, err := time.ParseInLocation(dateOnlyLayout, s, loc); err == nil {
		t := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, loc)
		return &t, nil
	}
	return nil, fmt.Errorf("use %s or %s", "YYYY-MM-DD HH:MM", "YYYY-MM-DD")
}

// FormatDue renders a due date for the form field
func FormatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DueLayout)
}

func validateDue(s string) error {
	_, err := ParseDue(s, time.Local)
	return err
}
