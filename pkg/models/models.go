/*
Package models defines the shared data structures for the wincalc public
surface.

These models are used for:
- **JSON output**: The -json CLI mode and file export.
- **HTTP API**: Request and response bodies of the derivation endpoint.
*/

package models

import "encoding/json"

// Matrix is the serialized form of a transform matrix: rows of exact or
// fixed-precision entries rendered as strings, so rationals like "1/6" and
// surds like "sqrt(3)/2" survive the trip through JSON unchanged.
type Matrix [][]string

// DerivationRequest is the request body of the derivation endpoint and the
// parsed form of a CLI invocation.
type DerivationRequest struct {
	// N is the output tile size of the F(n, r) transform.
	N int `json:"n"`
	// R is the filter size of the F(n, r) transform.
	R int `json:"r"`
	// Points is the interpolation point list ("0", "1", "-1", "1/2", ...).
	// Ignored when Chebyshev is true.
	Points []string `json:"points,omitempty"`
	// Chebyshev selects Chebyshev nodes instead of explicit points.
	Chebyshev bool `json:"chebyshev,omitempty"`
	// Policy is the fraction-placement policy name
	// ("filter", "output", "input", "scale").
	Policy string `json:"policy,omitempty"`
	// Precision is the significant-decimal-digit count, 0 for exact.
	Precision int `json:"precision,omitempty"`
	// Verify requests the symbolic self-check.
	Verify bool `json:"verify,omitempty"`
}

// DerivationResult is the serialized outcome of one transform derivation.
type DerivationResult struct {
	// N, R and Alpha identify the F(n, r) instance; Alpha = n + r - 1.
	N     int `json:"n"`
	R     int `json:"r"`
	Alpha int `json:"alpha"`
	// Policy is the fraction-placement policy the matrices were derived under.
	Policy string `json:"policy"`
	// Points echoes the interpolation points the derivation used.
	Points []string `json:"points"`
	// Precision is the significant-digit count of the entries, 0 for exact.
	Precision int `json:"precision"`
	// AT, G, BT are the output, filter and input transforms; F is the
	// diagonal scale matrix.
	AT Matrix `json:"at"`
	G  Matrix `json:"g"`
	BT Matrix `json:"bt"`
	F  Matrix `json:"f"`
	// A, B are the transposed linear-convolution forms, present when the
	// convolution presentation was requested.
	A Matrix `json:"a,omitempty"`
	B Matrix `json:"b,omitempty"`
	// Verified is true when the symbolic self-check ran and passed.
	Verified bool `json:"verified"`
	// DurationMs is the derivation time in milliseconds.
	DurationMs float64 `json:"duration_ms"`
}

// ErrorResponse is the JSON error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ToJSON serializes the result to indented JSON.
func (r DerivationResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
