package winograd

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/agbru/wincalc/internal/exact"
)

var (
	derivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wincalc_derivations_total",
			Help: "The total number of transform derivations processed",
		},
		[]string{"policy", "status"},
	)
	derivationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "wincalc_derivation_duration_seconds",
			Help: "The duration of transform derivations in seconds",
		},
		[]string{"policy"},
	)
)

// Request describes one transform derivation.
type Request struct {
	// Points are the interpolation points; at least N + R - 2 are required.
	Points []exact.Scalar
	// N is the output tile size.
	N int
	// R is the filter size.
	R int
	// Policy selects the fraction placement.
	Policy Policy
	// Precision is the significant-digit count for decimal output, 0 for exact.
	Precision int
	// Verify runs the symbolic self-check on the exact derivation before any
	// rounding. Skipped under FractionsInScale, whose BT is returned
	// unscaled and does not satisfy the identity on its own.
	Verify bool
}

// Result is a completed derivation.
type Result struct {
	Transforms Transforms
	// Verified is true when the symbolic self-check ran and passed.
	Verified bool
	Duration time.Duration
}

// Deriver runs transform derivations with cross-cutting instrumentation:
// an OpenTelemetry span, Prometheus counters and duration histogram, and a
// structured debug log per derivation. The pure builders underneath stay
// free of any I/O.
type Deriver struct{}

// NewDeriver returns a ready Deriver.
func NewDeriver() *Deriver { return &Deriver{} }

// Derive performs one derivation. The exact derivation always runs first;
// verification (when requested) inspects the exact matrices, and rounding
// to the requested precision happens last. The context is consulted before
// the computation starts: a single derivation is a bounded in-memory
// computation with no internal cancellation points.
func (dv *Deriver) Derive(ctx context.Context, req Request) (res Result, err error) {
	tracer := otel.Tracer("winograd")
	_, span := tracer.Start(ctx, "Derive")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		policy := req.Policy.String()
		derivationsTotal.WithLabelValues(policy, status).Inc()
		derivationDuration.WithLabelValues(policy).Observe(duration)

		log.Debug().
			Str("policy", policy).
			Int("n", req.N).
			Int("r", req.R).
			Int("precision", req.Precision).
			Float64("duration", duration).
			Str("status", status).
			Msg("derivation completed")
	}()

	if err = ctx.Err(); err != nil {
		return Result{}, err
	}

	t, err := CookToom(req.Points, req.N, req.R, req.Policy, 0)
	if err != nil {
		return Result{}, err
	}

	verified := false
	if req.Verify && req.Policy != FractionsInScale {
		if err = VerifyTransforms(t); err != nil {
			return Result{}, err
		}
		verified = true
	}

	if req.Precision > 0 {
		t = t.Round(req.Precision)
	}

	return Result{
		Transforms: t,
		Verified:   verified,
		Duration:   time.Since(start),
	}, nil
}
