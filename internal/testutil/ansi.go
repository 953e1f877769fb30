// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// CSI sequences: ESC [ followed by parameter bytes and a final letter.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from s so CLI output tests can
// assert on plain text regardless of the active theme.
func StripAnsiCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
