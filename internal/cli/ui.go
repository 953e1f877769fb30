// The cli package provides functions for building a command-line interface (CLI)
// for the Winograd transform calculator. It handles the asynchronous display of
// derivation progress and formats the transform matrices for a clear and
// readable presentation.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/wincalc/internal/ui"
	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
)

// Color accessors delegate to the ui package so display code in this package
// does not reach into the theme structs directly.

func ColorReset() string     { return ui.GetCurrentTheme().Reset }
func ColorRed() string       { return ui.GetCurrentTheme().Error }
func ColorGreen() string     { return ui.GetCurrentTheme().Success }
func ColorYellow() string    { return ui.GetCurrentTheme().Warning }
func ColorBlue() string      { return ui.GetCurrentTheme().Primary }
func ColorMagenta() string   { return ui.GetCurrentTheme().Info }
func ColorCyan() string      { return ui.GetCurrentTheme().Secondary }
func ColorBold() string      { return ui.GetCurrentTheme().Bold }
func ColorUnderline() string { return ui.GetCurrentTheme().Underline }

// Spinner is the minimal surface DisplayProgress needs from a terminal
// spinner. Tests substitute a recording implementation through newSpinner.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress manages the asynchronous display of a spinner during the
// derivations. It is designed to run in a dedicated goroutine and shows the
// most recent status message received on the channel, shutting down gracefully
// when the channel is closed.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - statusChan: The channel receiving per-derivation status messages.
//   - out: The io.Writer to which the spinner is rendered.
func DisplayProgress(wg *sync.WaitGroup, statusChan <-chan string, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	for status := range statusChan {
		s.UpdateSuffix(" " + status)
	}
}
