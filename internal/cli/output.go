package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (schema violations found)
	ExitCommandError = 2 // Command error (unknown basis set, unreadable data dir, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// writeResult delivers a command's text to stdout or the --output file,
// normalized to end in exactly one newline.
func writeResult(cmd *cobra.Command, opts *RootOptions, out string) error {
	if out != "" {
		out = strings.TrimRight(out, "\n") + "\n"
	}
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		return nil
	}
	_, err := io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// formatColumns aligns rows into columns separated by two spaces, each
// prefixed with prefix. Every column but the last pads to the widest
// cell beneath it. Short rows are allowed; missing cells render empty.
func formatColumns(rows [][]string, prefix string) []string {
	ncols := 0
	for _, row := range rows {
		if len(row) > ncols {
			ncols = len(row)
		}
	}
	if ncols == 0 {
		return nil
	}

	widths := make([]int, ncols-1)
	for _, row := range rows {
		for c := 0; c < len(row) && c < ncols-1; c++ {
			if len(row[c]) > widths[c] {
				widths[c] = len(row[c])
			}
		}
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString(prefix)
		for c := 0; c < ncols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c < ncols-1 {
				fmt.Fprintf(&sb, "%-*s  ", widths[c], cell)
			} else {
				sb.WriteString(cell)
			}
		}
		out = append(out, strings.TrimRight(sb.String(), " "))
	}
	return out
}
