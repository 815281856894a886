package cli

import (
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskflow/internal/filter"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ParsePriority validates a --priority value
func ParsePriority(priority string) (models.Priority, error) {
	p, err := models.ParsePriority(priority)
	if err != nil {
		return "", &UsageError{
			Message:    "invalid priority '" + priority + "'",
			Suggestion: "use one of: low, medium, high",
		}
	}
	return p, nil
}

// ParseStatus validates a --status value
func ParseStatus(status string) (filter.Status, error) {
	s, ok := filter.ParseStatus(status)
	if !ok {
		return filter.StatusAny, &UsageError{
			Message:    "invalid status '" + status + "'",
			Suggestion: "use one of: all, incomplete, completed",
		}
	}
	return s, nil
}

// ParseID parses a positive integer id argument
func ParseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, Usagef("%s ID must be a positive integer, got %q", kind, raw)
	}
	return id, nil
}
