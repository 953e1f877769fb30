// Package config provides the configuration management for the wincalc application.
// It defines the data structure for the configuration, handles the parsing of
// command-line arguments, and performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/wincalc/internal/errors"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/winograd"
)

const (
	// EnvPrefix is the prefix for all environment variables used by wincalc.
	// Environment variables provide an alternative to CLI flags for configuration,
	// following the 12-Factor App methodology.
	EnvPrefix = "WINCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default output tile size.
	DefaultN = 2
	// DefaultR is the default filter size.
	DefaultR = 3
	// DefaultPoints is the default interpolation point list, the classical
	// F(2,3) set.
	DefaultPoints = "0,1,-1"
	// DefaultPolicy is the default fraction-placement policy.
	DefaultPolicy = "filter"
	// DefaultForm is the default presentation form.
	DefaultForm = "filter"
	// DefaultTimeout is the default derivation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
)

// Valid presentation forms for the derived transforms.
const (
	FormFilter      = "filter"
	FormConvolution = "convolution"
	FormBoth        = "both"
)

// AppConfig aggregates the application's configuration parameters, parsed from
// command-line flags. It encapsulates all settings that control the execution,
// from the transform sizes and interpolation points to output formatting.
type AppConfig struct {
	// N is the output tile size of the F(n, r) transform.
	N int
	// R is the filter (kernel) size of the F(n, r) transform.
	R int
	// Points is the comma-separated interpolation point list. Ignored when
	// Chebyshev is set.
	Points string
	// Chebyshev, if true, generates the n + r - 2 interpolation points from
	// Chebyshev nodes instead of using Points.
	Chebyshev bool
	// Policy selects the fraction-placement policy
	// ("filter", "output", "input", "scale").
	Policy string
	// AllPolicies, if true, derives the transforms under all four policies
	// and reports them side by side.
	AllPolicies bool
	// Precision is the significant-decimal-digit count for fixed-precision
	// output; 0 keeps every entry exact.
	Precision int
	// Verify, if true, runs the symbolic self-check on each derivation.
	Verify bool
	// Form selects the presentation: FIR filter matrices (AT, G, BT), the
	// transposed linear-convolution matrices (A, G, B), or both.
	Form string
	// Timeout sets the maximum duration for the derivation.
	Timeout time.Duration
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// Completion, if non-empty, names the shell to generate a completion
	// script for; the application prints the script and exits.
	Completion string
}

// ParsedPolicy returns the configured fraction-placement policy.
func (c AppConfig) ParsedPolicy() (winograd.Policy, error) {
	return winograd.ParsePolicy(c.Policy)
}

// ResolvePoints returns the interpolation points for the configured
// derivation: the n + r - 2 Chebyshev nodes when Chebyshev is set,
// otherwise the parsed Points list. Chebyshev nodes stay exact here;
// precision is applied by the derivation itself so the self-check can run
// on the exact forms.
func (c AppConfig) ResolvePoints() ([]exact.Scalar, error) {
	if c.Chebyshev {
		return winograd.ChebyshevPoints(c.N+c.R-2, 0)
	}
	return winograd.ParsePoints(c.Points)
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen policy and form are supported.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.N < 1 || c.R < 1 {
		return apperrors.NewConfigError("output size and filter size must be strictly positive: n=%d, r=%d", c.N, c.R)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Precision < 0 {
		return apperrors.NewConfigError("precision cannot be negative: %d", c.Precision)
	}
	if _, err := winograd.ParsePolicy(c.Policy); err != nil {
		return apperrors.NewConfigError("unrecognized policy: '%s'. Valid policies are: [%s]", c.Policy, strings.Join(policyNames(), ", "))
	}
	switch c.Form {
	case FormFilter, FormConvolution, FormBoth:
	default:
		return apperrors.NewConfigError("unrecognized form: '%s'. Valid forms are: '%s', '%s', '%s'", c.Form, FormFilter, FormConvolution, FormBoth)
	}
	if !c.Chebyshev {
		points, err := winograd.ParsePoints(c.Points)
		if err != nil {
			return apperrors.NewConfigError("invalid interpolation points: %v", err)
		}
		if len(points) < c.N+c.R-2 {
			return apperrors.NewConfigError("need at least %d interpolation points for F(%d,%d), got %d", c.N+c.R-2, c.N, c.R, len(points))
		}
	}
	return nil
}

func policyNames() []string {
	policies := winograd.Policies()
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}
	return names
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values, and
// handles the parsing process. After parsing, it performs validation on the
// resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	policyHelp := fmt.Sprintf("Fraction-placement policy: one of [%s].", strings.Join(policyNames(), ", "))

	config := AppConfig{}
	fs.IntVar(&config.N, "n", DefaultN, "Output tile size n of the F(n,r) transform.")
	fs.IntVar(&config.R, "r", DefaultR, "Filter size r of the F(n,r) transform.")
	fs.StringVar(&config.Points, "points", DefaultPoints, "Comma-separated interpolation points (integers, fractions like 1/2, or decimals).")
	fs.BoolVar(&config.Chebyshev, "chebyshev", false, "Use Chebyshev nodes as interpolation points instead of -points.")
	fs.StringVar(&config.Policy, "fractions-in", DefaultPolicy, policyHelp)
	fs.BoolVar(&config.AllPolicies, "all-policies", false, "Derive the transforms under all four fraction-placement policies.")
	fs.IntVar(&config.Precision, "precision", 0, "Significant decimal digits for fixed-precision output (0 = exact).")
	fs.BoolVar(&config.Verify, "verify", true, "Symbolically verify the derived transforms against the direct convolution.")
	fs.StringVar(&config.Form, "form", DefaultForm, "Presentation form: 'filter' (AT, G, BT), 'convolution' (A, G, B), or 'both'.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the derivation.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a shell completion script (bash, zsh, fish, powershell) and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Policy = strings.ToLower(config.Policy)
	config.Form = strings.ToLower(config.Form)
	// Completion mode short-circuits validation: the script is printed and the
	// application exits before any derivation settings are consulted.
	if config.Completion != "" {
		return config, nil
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
