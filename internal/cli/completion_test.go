package cli

import (
	"bytes"
	"strings"
	"testing"
)

var completionPolicies = []string{"filter", "output", "input", "scale"}

// TestGenerateCompletionShells tests that every supported shell produces a
// script naming the policies and the main flags.
func TestGenerateCompletionShells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, shell, completionPolicies); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", shell, err)
			}
			out := buf.String()
			if !strings.Contains(out, "wincalc") {
				t.Error("script does not mention the command name")
			}
			if !strings.Contains(out, "fractions-in") {
				t.Error("script does not complete the policy flag")
			}
			for _, p := range completionPolicies {
				if !strings.Contains(out, p) {
					t.Errorf("script is missing policy %q", p)
				}
			}
		})
	}
}

// TestGenerateCompletionAliases tests the powershell alias.
func TestGenerateCompletionAliases(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "ps", completionPolicies); err != nil {
		t.Fatalf("GenerateCompletion(ps): %v", err)
	}
	if !strings.Contains(buf.String(), "Register-ArgumentCompleter") {
		t.Error("ps alias should produce the PowerShell script")
	}
}

// TestGenerateCompletionUnsupported tests rejection of unknown shells.
func TestGenerateCompletionUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "tcsh", completionPolicies); err == nil {
		t.Error("expected error for an unsupported shell")
	}
}
