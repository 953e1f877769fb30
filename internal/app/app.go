package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/wincalc/internal/cli"
	"github.com/agbru/wincalc/internal/config"
	apperrors "github.com/agbru/wincalc/internal/errors"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/orchestration"
	"github.com/agbru/wincalc/internal/server"
	"github.com/agbru/wincalc/internal/ui"
	"github.com/agbru/wincalc/internal/winograd"
	"github.com/agbru/wincalc/pkg/models"
)

// Application represents the wincalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in various modes (CLI, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Deriver executes the transform derivations.
	Deriver *winograd.Deriver
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "wincalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Deriver:   winograd.NewDeriver(),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (completion, server, or CLI).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Handle completion script generation
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Standard CLI derivation mode
	return a.runDerive(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	policies := winograd.Policies()
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, names); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Deriver, a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runDerive orchestrates the execution of the CLI derivation command.
func (a *Application) runDerive(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	points, err := a.Config.ResolvePoints()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid interpolation points: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	policies, err := cli.PoliciesToRun(a.Config)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid policy: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Skip verbose output in quiet mode
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, points, out)
		cli.PrintExecutionMode(policies, out)
	}

	// In quiet and JSON modes, use a discard writer for progress display
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	// Execute derivations
	results := orchestration.ExecuteDerivations(ctx, a.Deriver, policies, points, a.Config, progressOut)

	// Handle JSON output
	if a.Config.JSONOutput {
		return a.printJSONResults(results, points, out)
	}

	// Quiet single-policy mode prints the matrices alone
	if a.Config.Quiet && len(results) == 1 {
		res := results[0]
		if res.Err != nil {
			return apperrors.HandleDerivationError(res.Err, res.Duration, a.ErrWriter, cli.CLIColorProvider{})
		}
		outputCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Quiet:      true,
			Form:       a.Config.Form,
		}
		if err := cli.DisplayResultWithConfig(out, res.Result, points, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	return orchestration.AnalyzeComparisonResults(results, points, a.Config, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// jsonOutcome represents a single derivation outcome in JSON format.
type jsonOutcome struct {
	Policy   string                   `json:"policy"`
	Duration string                   `json:"duration"`
	Result   *models.DerivationResult `json:"result,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// printJSONResults formats the derivation outcomes as a JSON array and writes
// them to the output. This is useful for programmatic consumption of the results.
func (a *Application) printJSONResults(results []orchestration.DerivationOutcome, points []exact.Scalar, out io.Writer) int {
	output := make([]jsonOutcome, len(results))
	for i, res := range results {
		jo := jsonOutcome{
			Policy:   res.Policy.String(),
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			jo.Error = res.Err.Error()
		} else {
			m := cli.BuildModel(res.Result, points, a.Config.Form)
			jo.Result = &m
		}
		output[i] = jo
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
