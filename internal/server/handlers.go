package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/wincalc/internal/cli"
	"github.com/agbru/wincalc/internal/config"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/winograd"
	"github.com/agbru/wincalc/pkg/models"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handlePolicies returns the list of available fraction-placement policies.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handlePolicies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	policies := winograd.Policies()
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}

	response := map[string]any{
		"policies": names,
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleDerive processes transform derivation requests.
// It decodes the JSON request body, resolves the interpolation points and
// policy, executes the derivation, and returns the matrices in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleDerive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, policy, points, err := s.parseDeriveRequest(r)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Create a context with timeout for the derivation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	res, err := s.deriver.Derive(ctx, winograd.Request{
		Points:    points,
		N:         req.N,
		R:         req.R,
		Policy:    policy,
		Precision: req.Precision,
		Verify:    req.Verify,
	})
	if err != nil {
		if errors.Is(err, winograd.ErrVerificationFailed) {
			s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSONResponse(w, http.StatusOK, cli.BuildModel(res, points, config.FormBoth))
}

// parseDeriveRequest decodes and validates the derivation request body.
//
// Parameters:
//   - r: The HTTP request containing the JSON body.
//
// Returns:
//   - req: The decoded request.
//   - policy: The resolved fraction-placement policy.
//   - points: The resolved interpolation points.
//   - err: An error if decoding or validation fails.
func (s *Server) parseDeriveRequest(r *http.Request) (req models.DerivationRequest, policy winograd.Policy, points []exact.Scalar, err error) {
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, 0, nil, fmt.Errorf("invalid request body: %w", err)
	}

	if req.N < 1 || req.R < 1 {
		return req, 0, nil, fmt.Errorf("'n' and 'r' must be strictly positive: n=%d, r=%d", req.N, req.R)
	}
	if req.N+req.R-1 > s.securityConfig.MaxAlpha {
		return req, 0, nil, fmt.Errorf("transform dimension n+r-1 exceeds maximum allowed (%d). This limit prevents resource exhaustion.", s.securityConfig.MaxAlpha)
	}
	if req.Precision < 0 {
		return req, 0, nil, fmt.Errorf("'precision' cannot be negative: %d", req.Precision)
	}

	policyName := req.Policy
	if policyName == "" {
		policyName = config.DefaultPolicy
	}
	policy, err = winograd.ParsePolicy(policyName)
	if err != nil {
		return req, 0, nil, err
	}

	if req.Chebyshev {
		points, err = winograd.ChebyshevPoints(req.N+req.R-2, 0)
	} else {
		if len(req.Points) == 0 {
			return req, 0, nil, fmt.Errorf("missing 'points': %d interpolation points are required", req.N+req.R-2)
		}
		points, err = winograd.ParsePoints(strings.Join(req.Points, ","))
	}
	if err != nil {
		return req, 0, nil, err
	}

	return req, policy, points, nil
}

// writeJSONResponse helper function to write a JSON response with the correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, models.ErrorResponse{
		Error: message,
		Code:  statusCode,
	})
}
