package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/wincalc/internal/config"
	apperrors "github.com/agbru/wincalc/internal/errors"
	"github.com/agbru/wincalc/internal/testutil"
	"github.com/agbru/wincalc/internal/winograd"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		N:       2,
		R:       3,
		Points:  "0,1,-1",
		Policy:  "filter",
		Verify:  true,
		Form:    config.FormFilter,
		Timeout: time.Minute,
	}
}

// TestExecuteDerivationsAllPolicies tests the parallel comparison run.
func TestExecuteDerivationsAllPolicies(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints(cfg.Points)
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}

	results := ExecuteDerivations(context.Background(), winograd.NewDeriver(), winograd.Policies(), points, cfg, io.Discard)
	if len(results) != 4 {
		t.Fatalf("got %d outcomes, want 4", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("policy %s failed: %v", res.Policy, res.Err)
			continue
		}
		if res.Result.Transforms.Alpha() != 4 {
			t.Errorf("policy %s: Alpha() = %d, want 4", res.Policy, res.Result.Transforms.Alpha())
		}
		wantVerified := res.Policy != winograd.FractionsInScale
		if res.Result.Verified != wantVerified {
			t.Errorf("policy %s: Verified = %t, want %t", res.Policy, res.Result.Verified, wantVerified)
		}
	}
}

// TestExecuteDerivationsPropagatesErrors tests that input errors surface in
// the outcomes instead of aborting the run.
func TestExecuteDerivationsPropagatesErrors(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints("0,1")
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}

	results := ExecuteDerivations(context.Background(), winograd.NewDeriver(), []winograd.Policy{winograd.FractionsInFilter}, points, cfg, io.Discard)
	if len(results) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(results))
	}
	if !errors.Is(results[0].Err, winograd.ErrTooFewPoints) {
		t.Errorf("outcome error = %v, want ErrTooFewPoints", results[0].Err)
	}
}

// TestAnalyzeComparisonResultsSuccess tests the summary table and exit code
// for an all-success comparison.
func TestAnalyzeComparisonResultsSuccess(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints(cfg.Points)
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	results := ExecuteDerivations(context.Background(), winograd.NewDeriver(), winograd.Policies(), points, cfg, io.Discard)

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, points, cfg, &buf)
	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", code)
	}

	out := testutil.StripAnsiCodes(buf.String())
	for _, want := range []string{
		"Policy Comparison Summary",
		"Fractions in",
		"✅ Success",
		"n/a",
		"Global Status: Success.",
		"AT =",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

// TestAnalyzeComparisonResultsAllFailed tests the failure path.
func TestAnalyzeComparisonResultsAllFailed(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints(cfg.Points)
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}

	results := []DerivationOutcome{
		{Policy: winograd.FractionsInFilter, Err: winograd.ErrTooFewPoints},
		{Policy: winograd.FractionsInOutput, Err: winograd.ErrTooFewPoints},
	}

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, points, cfg, &buf)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	out := testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(out, "No policy could complete the derivation") {
		t.Errorf("missing global failure line:\n%s", out)
	}
	if !strings.Contains(out, "❌ Failure") {
		t.Errorf("missing per-policy failure marker:\n%s", out)
	}
}

// TestAnalyzeComparisonResultsMismatch tests the dedicated exit code for a
// failed symbolic verification.
func TestAnalyzeComparisonResultsMismatch(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints(cfg.Points)
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}

	results := []DerivationOutcome{
		{Policy: winograd.FractionsInFilter, Err: winograd.ErrVerificationFailed},
	}

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, points, cfg, &buf)
	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(buf.String(), "CRITICAL ERROR") {
		t.Errorf("missing critical error line:\n%s", buf.String())
	}
}

// TestAnalyzeComparisonResultsOrdering tests that successes sort ahead of
// failures.
func TestAnalyzeComparisonResultsOrdering(t *testing.T) {
	cfg := testConfig()
	points, err := winograd.ParsePoints(cfg.Points)
	if err != nil {
		t.Fatalf("ParsePoints: %v", err)
	}
	ok := ExecuteDerivations(context.Background(), winograd.NewDeriver(), []winograd.Policy{winograd.FractionsInFilter}, points, cfg, io.Discard)

	results := []DerivationOutcome{
		{Policy: winograd.FractionsInOutput, Err: winograd.ErrTooFewPoints},
		ok[0],
	}
	var buf bytes.Buffer
	AnalyzeComparisonResults(results, points, cfg, &buf)
	if results[0].Err != nil {
		t.Error("the successful outcome should sort first")
	}
}
