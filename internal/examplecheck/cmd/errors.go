package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/timescale/examplecheck/internal/examplecheck/folders"
	"github.com/timescale/examplecheck/internal/examplecheck/logging"
	"github.com/timescale/examplecheck/internal/examplecheck/util"
)

// Exit codes shared by foldercheck and greet
const (
	ExitSuccess           = 0 // Success
	ExitGeneralError      = 1 // General error
	ExitMalformedEntry    = 2 // An entry under the prefix has no folder segment
	ExitInvalidParameters = 3 // Invalid parameters
)

// exitCodeError creates an error that will cause the program to exit with the specified code
type exitCodeError struct {
	code int
	err  error
}

func (e exitCodeError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitCodeError) Unwrap() error {
	return e.err
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

// exitWithCode returns an error that will cause the program to exit with the specified code
func exitWithCode(code int, err error) error {
	return exitCodeError{code: code, err: err}
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitGeneralError
}

// reportError logs err and writes a one-line diagnostic to w.
func reportError(w io.Writer, err error, noColor bool) {
	fields := []zap.Field{zap.Error(err), zap.Int("exit_code", exitCode(err))}
	var segErr *folders.SegmentError
	if errors.As(err, &segErr) {
		fields = append(fields,
			zap.Int("entry_index", segErr.Index),
			zap.String("entry", segErr.Entry),
			zap.Int("segments", segErr.Segments),
		)
	}
	logging.Debug("command failed", fields...)

	prefix := "Error:"
	// color.NoColor is derived from stdout; the decision here is about w.
	if util.UseColor(w, noColor) {
		original := color.NoColor
		defer func() { color.NoColor = original }()
		color.NoColor = false
		prefix = color.RedString(prefix)
	}
	fmt.Fprintln(w, prefix, err.Error())
}
