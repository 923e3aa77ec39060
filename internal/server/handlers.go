package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/u128calc/internal/logging"
	"github.com/agbru/u128calc/internal/orchestration"
	"github.com/agbru/u128calc/internal/uint128"
	"github.com/agbru/u128calc/internal/verify"
)

// ProductResponse is the JSON body returned by /v1/product.
type ProductResponse struct {
	A        uint64 `json:"a"`
	B        uint64 `json:"b"`
	Strategy string `json:"strategy"`
	Hex      string `json:"hex"`
	Dec      string `json:"dec"`
}

// VerifyResponse is the JSON body returned by /v1/verify.
type VerifyResponse struct {
	Subject    string `json:"subject"`
	Reference  string `json:"reference"`
	Cases      int    `json:"cases"`
	Mismatches int    `json:"mismatches"`
	Passed     bool   `json:"passed"`
	DurationMS int64  `json:"duration_ms"`
}

// HealthResponse is the JSON body returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleProduct computes the full 128-bit product of two 64-bit
// operands given as "a" and "b" query parameters. The optional
// "strategy" parameter selects the multiplier implementation.
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	a, err := parseOperandParam(r, "a")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := parseOperandParam(r, "b")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	strategy := r.URL.Query().Get("strategy")
	if strategy == "" {
		strategy = "auto"
	}
	m, err := multiplierByName(strategy)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	p := m.Product(a, b)
	s.writeJSON(w, http.StatusOK, ProductResponse{
		A:        a,
		B:        b,
		Strategy: m.Name(),
		Hex:      p.Hex(),
		Dec:      fmt.Sprintf("%d", p),
	})
}

// handleVerify runs the portable multiplier against the hardware
// reference over a seeded corpus and reports the outcome. Query
// parameters: "cases", "seed", "workers".
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	cases, err := intParam(r, "cases", verify.DefaultRandomCases)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if cases < 0 || cases > s.security.MaxVerifyCases {
		s.writeError(w, http.StatusBadRequest,
			fmt.Errorf("cases must be between 0 and %d", s.security.MaxVerifyCases))
		return
	}

	seed, err := intParam(r, "seed", 1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	workers, err := intParam(r, "workers", 1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	subject, reference := orchestration.VerificationPair()
	corpus := verify.Corpus(cases, int64(seed))

	start := time.Now()
	report, err := orchestration.ExecuteVerification(
		r.Context(), subject, reference, corpus, workers,
		orchestration.NullProgressReporter{}, io.Discard,
	)
	duration := time.Since(start)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.metrics.RecordVerification(report.Failures())
	if !report.Passed() {
		s.logger.Error("verification over http found mismatches", nil,
			logging.Int("mismatches", report.Failures()),
			logging.Int("cases", report.Cases),
		)
	}

	s.writeJSON(w, http.StatusOK, VerifyResponse{
		Subject:    report.Subject,
		Reference:  report.Reference,
		Cases:      report.Cases,
		Mismatches: report.Failures(),
		Passed:     report.Passed(),
		DurationMS: duration.Milliseconds(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path),
	)
	s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseOperandParam reads a required uint64 query parameter. Both
// decimal and 0x-prefixed hexadecimal forms are accepted.
func parseOperandParam(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %q: %v", name, err)
	}
	return v, nil
}

// intParam reads an optional non-negative integer query parameter.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %q: %v", name, err)
	}
	return v, nil
}

// multiplierByName resolves a strategy name to a multiplier. The
// "auto" alias picks the platform default.
func multiplierByName(name string) (uint128.Multiplier, error) {
	if name == "auto" {
		return uint128.DefaultMultiplier(), nil
	}
	for _, m := range uint128.Multipliers() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
