package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/MOYARU/tenancyscore/internal/version"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

const maxBodyBytes = 8 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type batchRequest struct {
	Requests []json.RawMessage `json:"requests"`
}

type batchResponse struct {
	Items []report.BatchItem `json:"items"`
}

type thresholdsResponse struct {
	Thresholds scoring.Thresholds `json:"thresholds"`
	Config     weights.Snapshot   `json:"config"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "version": version.Value})
}

func (s *Server) handleThresholds(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := s.load()
	if err != nil {
		s.logger.ErrorContext(r.Context(), "load settings failed", "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "scoring config unavailable"})
		return
	}
	s.writeJSON(w, r, http.StatusOK, thresholdsResponse{
		Thresholds: scoring.CalibrateThresholds(cfg),
		Config:     cfg.Snapshot(),
	})
}

// handleAssess handles POST /v1/assessments.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)
	start := time.Now()

	req, err := analysis.DecodeRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.metrics.IncrementOutcome("invalid")
		s.logger.InfoContext(ctx, "rejected assessment request", "request_id", requestID, "error", err)
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cfg, sanitizer, err := s.load()
	if err != nil {
		s.metrics.IncrementOutcome("error")
		s.logger.ErrorContext(ctx, "load settings failed", "request_id", requestID, "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "scoring config unavailable"})
		return
	}

	a, err := report.Assess(req, cfg, report.WithSanitizer(sanitizer))
	if err != nil {
		s.metrics.IncrementOutcome("invalid")
		s.writeJSON(w, r, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.observe(a, time.Since(start))

	s.logger.InfoContext(ctx, "assessment completed",
		"request_id", requestID,
		"document_type", a.Metadata.DocumentType,
		"final_score", a.Compliance.FinalScore,
		"confidence", a.Confidence.OverallConfidence,
		"violations", len(a.Violations),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	s.writeJSON(w, r, http.StatusOK, a)
}

// handleBatch handles POST /v1/assessments/batch. Items that fail to decode
// or validate carry their error; the batch itself still succeeds.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	raws, err := decodeBatch(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	cfg, sanitizer, err := s.load()
	if err != nil {
		s.logger.ErrorContext(ctx, "load settings failed", "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "scoring config unavailable"})
		return
	}

	reqs := make([]analysis.Request, len(raws))
	decodeErrs := make(map[int]error)
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &reqs[i]); err != nil {
			decodeErrs[i] = fmt.Errorf("decode request: %w", err)
			continue
		}
		reqs[i].Analysis.Normalize()
	}

	items, err := report.Batch(ctx, reqs, cfg, s.workers, report.WithSanitizer(sanitizer))
	if err != nil {
		s.logger.ErrorContext(ctx, "batch interrupted", "error", err)
		s.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	for i := range items {
		if derr, ok := decodeErrs[i]; ok {
			items[i] = report.BatchItem{Index: i, Err: derr, Error: derr.Error()}
		}
		if items[i].Err != nil {
			s.metrics.IncrementOutcome("invalid")
			continue
		}
		s.observe(items[i].Assessment, 0)
	}
	s.metrics.ObserveAssessLatency(time.Since(start))

	s.writeJSON(w, r, http.StatusOK, batchResponse{Items: items})
}

// decodeBatch accepts either a bare JSON array of requests or an object
// wrapping them in "requests".
func decodeBatch(r io.Reader) ([]json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode batch: %w", err)
		}
		return items, nil
	}
	var body batchRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return body.Requests, nil
}

func (s *Server) load() (*weights.Config, *report.Sanitizer, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, nil, err
	}
	sanitizer, err := report.NewSanitizer(settings.RedactionPatterns)
	if err != nil {
		return nil, nil, err
	}
	return settings.Scoring, sanitizer, nil
}

func (s *Server) observe(a *report.Assessment, d time.Duration) {
	s.metrics.IncrementOutcome("ok")
	if d > 0 {
		s.metrics.ObserveAssessLatency(d)
	}
	s.metrics.ObserveScores(a.Compliance.FinalScore, a.Confidence.OverallConfidence)
	for _, v := range a.Violations {
		s.metrics.IncrementViolation(string(v.RecommendedSeverity))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, analysis.ErrMissingInsights), errors.Is(err, analysis.ErrMissingAnalysis):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v before any header is sent, so an encoding failure
// still reaches the client as a 500.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "encode response failed",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.DebugContext(r.Context(), "write response failed", "error", err)
	}
}
