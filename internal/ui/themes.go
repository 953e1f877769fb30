// Package ui provides theme and color support for the application's user interface.
// It defines color schemes and provides ANSI escape code functions for consistent
// styling across the CLI and other presentation layers.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between derivation logic and presentation.
package ui

import (
	"os"
	"sync"
)

// Theme is a named set of ANSI escape codes. Matrix displays lean on Bold and
// Primary; verification status lines use Success, Warning and Error.
type Theme struct {
	// Name identifies the theme ("dark", "light", "none").
	Name string
	// Primary is the accent color used for headers and matrix labels.
	Primary string
	// Secondary is used for de-emphasized detail such as point lists.
	Secondary string
	// Success marks passed verifications.
	Success string
	// Warning marks skipped verifications and timeouts.
	Warning string
	// Error marks failed verifications and fatal errors.
	Error string
	// Info is used for informational notes.
	Info string
	// Bold and Underline are text attributes.
	Bold      string
	Underline string
	// Reset clears all attributes.
	Reset string
}

// DarkTheme targets dark terminal backgrounds with bright 256-color codes.
var DarkTheme = Theme{
	Name:      "dark",
	Primary:   "\033[38;5;39m",
	Secondary: "\033[38;5;245m",
	Success:   "\033[38;5;82m",
	Warning:   "\033[38;5;220m",
	Error:     "\033[38;5;196m",
	Info:      "\033[38;5;141m",
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// LightTheme targets light backgrounds with darker variants of the same roles.
var LightTheme = Theme{
	Name:      "light",
	Primary:   "\033[38;5;27m",
	Secondary: "\033[38;5;240m",
	Success:   "\033[38;5;28m",
	Warning:   "\033[38;5;130m",
	Error:     "\033[38;5;124m",
	Info:      "\033[38;5;54m",
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// NoColorTheme carries only empty codes. Selected by -no-color or NO_COLOR.
var NoColorTheme = Theme{Name: "none"}

var (
	themeMu sync.RWMutex
	active  = DarkTheme

	themes = map[string]Theme{
		"dark":  DarkTheme,
		"light": LightTheme,
		"none":  NoColorTheme,
	}
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return active
}

// SetCurrentTheme replaces the active theme directly. Tests use it to restore
// state after exercising themed output.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	active = t
}

// SetTheme activates the theme registered under name. Unknown names fall back
// to the dark theme.
//
// Parameters:
//   - name: One of "dark", "light" or "none".
func SetTheme(name string) {
	themeMu.Lock()
	defer themeMu.Unlock()
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	active = t
}

// InitTheme selects the startup theme. The noColor flag wins over everything;
// otherwise a set NO_COLOR environment variable (https://no-color.org/)
// disables colors, and the dark theme is the default.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMu.Lock()
	defer themeMu.Unlock()

	if noColor {
		active = NoColorTheme
		return
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		active = NoColorTheme
		return
	}
	active = DarkTheme
}
