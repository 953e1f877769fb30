package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the terminal color codes the handler needs without
// importing the cli package, which would create an import cycle.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider emits no color codes, for non-terminal output.
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleDerivationError reports a failed derivation to the user and maps the
// error class to the process exit code. Deadline expiry, cancellation and
// generic failures each get a distinct message and code.
//
// Parameters:
//   - err: The error that ended the derivation.
//   - duration: How long the derivation ran before failing; 0 suppresses it.
//   - out: The io.Writer the message is written to.
//   - colors: Terminal color codes; nil means no colors.
//
// Returns:
//   - int: The exit code for the error class.
func HandleDerivationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
		return ExitErrorGeneric
	}
}
