package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/wincalc/internal/config"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/winograd"
)

// CLIColorProvider supplies terminal color codes to the error handlers,
// implementing the apperrors.ColorProvider interface.
type CLIColorProvider struct{}

// Yellow returns the warning color from the current theme.
func (CLIColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the reset escape code from the current theme.
func (CLIColorProvider) Reset() string { return ColorReset() }

// PoliciesToRun determines which fraction-placement policies should be derived
// based on the configuration: all four in comparison mode, otherwise the
// single configured policy.
//
// Parameters:
//   - cfg: The application configuration containing the policy selection.
//
// Returns:
//   - []winograd.Policy: The policies to derive, in enum order.
//   - error: An error if the configured policy name is invalid.
func PoliciesToRun(cfg config.AppConfig) ([]winograd.Policy, error) {
	if cfg.AllPolicies {
		return winograd.Policies(), nil
	}
	policy, err := cfg.ParsedPolicy()
	if err != nil {
		return nil, err
	}
	return []winograd.Policy{policy}, nil
}

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the transform instance, interpolation points, timeout, and
// environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - points: The resolved interpolation points.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, points []exact.Scalar, out io.Writer) {
	pointStrs := make([]string, len(points))
	for i, p := range points {
		pointStrs[i] = p.String()
	}

	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Deriving %sF(%d,%d)%s with a timeout of %s%s%s.\n",
		ColorMagenta(), cfg.N, cfg.R, ColorReset(), ColorYellow(), cfg.Timeout, ColorReset())
	writeOut(out, "Interpolation points: %s%s%s (plus the point at infinity).\n",
		ColorCyan(), strings.Join(pointStrs, ", "), ColorReset())
	if cfg.Precision > 0 {
		writeOut(out, "Output precision: %s%d%s significant digits.\n", ColorCyan(), cfg.Precision, ColorReset())
	}
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
}

// PrintExecutionMode displays the execution mode (single policy vs comparison).
//
// Parameters:
//   - policies: The policies that will be derived.
//   - out: The writer for standard output.
func PrintExecutionMode(policies []winograd.Policy, out io.Writer) {
	var modeDesc string
	if len(policies) > 1 {
		modeDesc = "Parallel comparison of all fraction-placement policies"
	} else {
		modeDesc = fmt.Sprintf("Single derivation with fractions in the %s%s%s transform",
			ColorGreen(), policies[0], ColorReset())
	}
	writeOut(out, "Execution mode: %s.\n", modeDesc)
	writeOut(out, "\n--- Starting Derivation ---\n")
}

// writeOut writes a formatted string to the output writer.
//
// Parameters:
//   - out: The destination writer.
//   - format: The format string (see fmt.Printf).
//   - a: Arguments for the format string.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
