package cli

import "fmt"

// UsageError reports a malformed flag or argument
type UsageError struct {
	Message    string
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch CodeFor(err) {
	case ExitUsage:
		return "INVALID_ARGUMENT"
	case ExitNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}
