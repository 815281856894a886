package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

// Result pairs command data with its human-readable rendering
type Result struct {
	Data  any
	Human func(w io.Writer) error
}

type identifiable interface{ GetID() int }

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	var human func(io.Writer) error
	if r, ok := data.(*Result); ok {
		data, human = r.Data, r.Human
	}

	if f.Quiet {
		if ids, ok := extractIDs(data); ok {
			for _, id := range ids {
				fmt.Fprintf(f.out(), "%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.out())
	}
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	suggestion := ""
	var usage *UsageError
	if errors.As(err, &usage) {
		suggestion = usage.Suggestion
	}
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
	return Exit(CodeFor(err), err)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// extractIDs returns the id of an identifiable value, or of every element
// of a slice of identifiable values
func extractIDs(data any) ([]int, bool) {
	if v, ok := data.(identifiable); ok {
		return []int{v.GetID()}, true
	}

	rv := reflect.ValueOf(data)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	ids := make([]int, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, ok := rv.Index(i).Interface().(identifiable)
		if !ok {
			return nil, false
		}
		ids = append(ids, v.GetID())
	}
	return ids, true
}
