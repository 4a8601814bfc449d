package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.JSONSuccess("data", data)
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// JSONSuccess writes {"success": true, key: data}
func (f *OutputFormatter) JSONSuccess(key string, data any) error {
	return json.NewEncoder(f.out()).Encode(map[string]any{
		"success": true,
		key:       data,
	})
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

// Fail reports err with a suggestion and returns a *CommandError whose code is
// derived from the error kind
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	exitCode, code := Classify(err)
	return f.FailWith(exitCode, code, err, suggestion)
}

// FailWith reports err under an explicit code and exit status
func (f *OutputFormatter) FailWith(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: exitCode, Err: err}
}

// Printf writes human-readable output
func (f *OutputFormatter) Printf(format string, args ...any) {
	fmt.Fprintf(f.out(), format, args...)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.out(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
