package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupContext derives a context bounded by the -timeout flag. Symbolic
// verification of large transforms can run long, so every derivation runs
// under this deadline.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The duration after which the context expires.
//
// Returns:
//   - context.Context: The bounded context.
//   - context.CancelFunc: Releases the timer; callers defer it.
func SetupContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// SetupSignals derives a context canceled on SIGINT or SIGTERM so both the
// CLI and the server shut down cleanly.
//
// Parameters:
//   - ctx: The parent context.
//
// Returns:
//   - context.Context: A context canceled on signal receipt.
//   - context.CancelFunc: Stops the signal relay; callers defer it.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// CancelFuncs bundles the lifecycle cancel functions so a single Cleanup can
// release both.
type CancelFuncs struct {
	CancelTimeout context.CancelFunc
	StopSignals   context.CancelFunc
}

// Cleanup releases the signal relay and the timeout timer. Nil members are
// tolerated so partially constructed values can still be cleaned up.
func (c *CancelFuncs) Cleanup() {
	if c.StopSignals != nil {
		c.StopSignals()
	}
	if c.CancelTimeout != nil {
		c.CancelTimeout()
	}
}

// SetupLifecycle stacks the timeout and signal contexts. The returned context
// is done when either the deadline passes or a termination signal arrives.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration for the run.
//
// Returns:
//   - context.Context: The combined context.
//   - *CancelFuncs: Cancel functions for deferred cleanup.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	ctx, cancelTimeout := SetupContext(ctx, timeout)
	ctx, stopSignals := SetupSignals(ctx)

	return ctx, &CancelFuncs{
		CancelTimeout: cancelTimeout,
		StopSignals:   stopSignals,
	}
}
