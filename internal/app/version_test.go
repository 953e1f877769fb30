package app

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

// TestHasVersionFlag tests version-flag detection in any position.
func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-server", "--version"}, true},
		{[]string{"-n", "2"}, false},
		{[]string{}, false},
	}
	for _, tc := range tests {
		if got := HasVersionFlag(tc.args); got != tc.want {
			t.Errorf("HasVersionFlag(%v) = %t, want %t", tc.args, got, tc.want)
		}
	}
}

// TestPrintVersion tests the version banner contents.
func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	for _, want := range []string{"wincalc", Version, Commit, runtime.Version()} {
		if !strings.Contains(out, want) {
			t.Errorf("version output is missing %q:\n%s", want, out)
		}
	}
}

// TestGetVersionInfo tests the structured version data.
func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s", info.OS, info.Arch)
	}
}
