// Package config provides the configuration management for the wincalc application.
// This file contains environment variable utilities for configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString reads EnvPrefix+key, falling back to defaultVal when unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt reads EnvPrefix+key as an int; unset or unparsable values keep
// the default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool reads EnvPrefix+key as a bool. "true"/"1"/"yes" and
// "false"/"0"/"no" are recognized case-insensitively; anything else keeps the
// default.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration reads EnvPrefix+key in time.ParseDuration syntax ("30s",
// "1h30m"); unset or unparsable values keep the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether the flag was given on the command line.
// Environment overrides only apply to flags the user did not set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - WINCALC_N: Output tile size (int)
//   - WINCALC_R: Filter size (int)
//   - WINCALC_POINTS: Interpolation point list (string: "0,1,-1,2,-2")
//   - WINCALC_FRACTIONS_IN: Fraction-placement policy (string: filter, output, input, scale)
//   - WINCALC_PRECISION: Significant decimal digits (int, 0 = exact)
//   - WINCALC_FORM: Presentation form (string: filter, convolution, both)
//   - WINCALC_TIMEOUT: Derivation timeout (duration: "1m", "30s")
//   - WINCALC_PORT: Port for server mode (string)
//   - WINCALC_OUTPUT: Output file path (string)
//   - WINCALC_SERVER: Enable server mode (bool: true/false, 1/0, yes/no)
//   - WINCALC_JSON: Enable JSON output (bool)
//   - WINCALC_QUIET: Enable quiet mode (bool)
//   - WINCALC_NO_COLOR: Disable colored output (bool)
//   - WINCALC_CHEBYSHEV: Use Chebyshev interpolation points (bool)
//   - WINCALC_VERIFY: Run the symbolic self-check (bool)
//   - WINCALC_ALL_POLICIES: Derive under all policies (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyNumericOverrides(config, fs)
	applyDurationOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "n") {
		config.N = getEnvInt("N", config.N)
	}
	if !isFlagSet(fs, "r") {
		config.R = getEnvInt("R", config.R)
	}
	if !isFlagSet(fs, "precision") {
		config.Precision = getEnvInt("PRECISION", config.Precision)
	}
}

func applyDurationOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "points") {
		config.Points = getEnvString("POINTS", config.Points)
	}
	if !isFlagSet(fs, "fractions-in") {
		config.Policy = getEnvString("FRACTIONS_IN", config.Policy)
	}
	if !isFlagSet(fs, "form") {
		config.Form = getEnvString("FORM", config.Form)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "chebyshev") {
		config.Chebyshev = getEnvBool("CHEBYSHEV", config.Chebyshev)
	}
	if !isFlagSet(fs, "verify") {
		config.Verify = getEnvBool("VERIFY", config.Verify)
	}
	if !isFlagSet(fs, "all-policies") {
		config.AllPolicies = getEnvBool("ALL_POLICIES", config.AllPolicies)
	}
}
