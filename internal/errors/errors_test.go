package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// TestConfigError tests message formatting for configuration errors.
func TestConfigError(t *testing.T) {
	err := NewConfigError("bad value %d for %s", 7, "precision")
	if got := err.Error(); got != "bad value 7 for precision" {
		t.Errorf("Error() = %q", got)
	}
	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Error("errors.As should match ConfigError")
	}
}

// TestDerivationErrorUnwrap tests cause preservation.
func TestDerivationErrorUnwrap(t *testing.T) {
	cause := errors.New("points are not distinct")
	err := DerivationError{Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want the cause message", err.Error())
	}
}

// TestServerError tests message composition with and without a cause.
func TestServerError(t *testing.T) {
	plain := NewServerError("listen failed", nil)
	if got := plain.Error(); got != "listen failed" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("address in use")
	wrapped := NewServerError("listen failed", cause)
	if got := wrapped.Error(); got != "listen failed: address in use" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

// TestWrapError tests the %w-based wrapping helper.
func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
	base := errors.New("boom")
	wrapped := WrapError(base, "while deriving F(%d,%d)", 2, 3)
	if got := wrapped.Error(); got != "while deriving F(2,3): boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should reach the base error")
	}
}

// TestIsContextError tests the context-error classifier.
func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should classify as a context error")
	}
	if !IsContextError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)) {
		t.Error("a wrapped deadline error should classify as a context error")
	}
	if IsContextError(errors.New("boom")) {
		t.Error("an ordinary error should not classify as a context error")
	}
}

// TestValidationError tests field-scoped and global validation messages.
func TestValidationError(t *testing.T) {
	withField := NewValidationError("n", "must be positive", 0)
	if got := withField.Error(); got != "validation error for 'n': must be positive" {
		t.Errorf("Error() = %q", got)
	}
	global := ValidationError{Message: "request body is empty"}
	if got := global.Error(); got != "validation error: request body is empty" {
		t.Errorf("Error() = %q", got)
	}
}
