package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/wincalc/internal/cli"
	"github.com/agbru/wincalc/internal/config"
	apperrors "github.com/agbru/wincalc/internal/errors"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/ui"
	"github.com/agbru/wincalc/internal/winograd"
)

// DerivationOutcome encapsulates the outcome of a single transform derivation.
// It serves as a standardized container for results derived under different
// fraction-placement policies, facilitating comparison and reporting.
type DerivationOutcome struct {
	// Policy is the fraction-placement policy the derivation ran under.
	Policy winograd.Policy
	// Result is the completed derivation. Its matrices are zero-valued if an
	// error occurred.
	Result winograd.Result
	// Duration is the time taken to complete the derivation.
	Duration time.Duration
	// Err contains any error that occurred during the derivation.
	Err error
}

// StatusBufferMultiplier defines the buffer size multiplier for the status
// channel. A larger buffer reduces the likelihood of blocking derivation
// goroutines when the UI is slow to consume updates.
const StatusBufferMultiplier = 5

// ExecuteDerivations orchestrates the concurrent derivation of the transforms
// under one or more fraction-placement policies.
//
// It manages the lifecycle of derivation goroutines, collects their results,
// and coordinates the display of progress updates. Each policy derivation is
// independent, so they run in parallel under a shared context.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - deriver: The deriver to execute.
//   - policies: The fraction-placement policies to derive under.
//   - points: The interpolation points shared by all derivations.
//   - cfg: The application configuration (n, r, precision, verify).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []DerivationOutcome: A slice containing the outcome of each derivation.
func ExecuteDerivations(ctx context.Context, deriver *winograd.Deriver, policies []winograd.Policy, points []exact.Scalar, cfg config.AppConfig, out io.Writer) []DerivationOutcome {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]DerivationOutcome, len(policies))
	statusChan := make(chan string, len(policies)*StatusBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, statusChan, out)

	for i, p := range policies {
		idx, policy := i, p
		g.Go(func() error {
			statusChan <- fmt.Sprintf("deriving F(%d,%d), fractions in %s", cfg.N, cfg.R, policy)
			startTime := time.Now()
			res, err := deriver.Derive(ctx, winograd.Request{
				Points:    points,
				N:         cfg.N,
				R:         cfg.R,
				Policy:    policy,
				Precision: cfg.Precision,
				Verify:    cfg.Verify,
			})
			results[idx] = DerivationOutcome{
				Policy: policy, Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(statusChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the outcomes from multiple policies and
// generates a summary report.
//
// It sorts the outcomes by execution time, displays a comparative table, and
// shows the full transforms of the configured policy (or the fastest
// successful one in comparison mode). It handles the logic for determining
// global success or failure based on the individual outcomes.
//
// Parameters:
//   - results: The slice of derivation outcomes to analyze.
//   - points: The interpolation points the derivations used.
//   - cfg: The application configuration.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []DerivationOutcome, points []exact.Scalar, cfg config.AppConfig, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *DerivationOutcome
	var firstError error
	verificationFailed := false
	successCount := 0

	fmt.Fprintf(out, "\n--- Policy Comparison Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sFractions in%s\t%sDuration%s\t%sVerified%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for i := range results {
		res := &results[i]
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			if errors.Is(res.Err, winograd.ErrVerificationFailed) {
				verificationFailed = true
			}
			if firstError == nil {
				firstError = res.Err
			}
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
			if firstValid == nil {
				firstValid = res
			}
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		verified := "-"
		if res.Err == nil {
			if res.Result.Verified {
				verified = "yes"
			} else if res.Policy == winograd.FractionsInScale {
				verified = "n/a"
			} else {
				verified = "no"
			}
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\t%s\n",
			ui.ColorBlue(), res.Policy, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			verified,
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if verificationFailed {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! A derived transform failed its symbolic verification.\n")
		return apperrors.ExitErrorMismatch
	}
	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No policy could complete the derivation.\n")
		return apperrors.HandleDerivationError(firstError, 0, out, cli.CLIColorProvider{})
	}

	fmt.Fprintf(out, "\nGlobal Status: Success.\n")
	outputConfig := cli.OutputConfig{
		OutputFile: cfg.OutputFile,
		JSON:       cfg.JSONOutput,
		Quiet:      cfg.Quiet,
		Form:       cfg.Form,
	}
	if err := cli.DisplayResultWithConfig(out, firstValid.Result, points, outputConfig); err != nil {
		fmt.Fprintf(out, "Warning: failed to output result: %v\n", err)
	}
	return apperrors.ExitSuccess
}
