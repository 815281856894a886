package cli

import (
	"errors"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: seed or config failures, cancelled contexts, or any error
	// that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: bad flag values, missing or malformed arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task or category does not exist.
	ExitNotFound = 3
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been reported to the user.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeFor(err)
}

// CodeFor classifies an error that has not been assigned a code yet
func CodeFor(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case models.IsNotFound(err):
		return ExitNotFound
	default:
		return ExitError
	}
}
