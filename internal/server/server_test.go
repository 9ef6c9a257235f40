package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/impact"
	"github.com/MOYARU/tenancyscore/internal/metrics"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

const feeRequest = `{
  "document_text": "1. The tenant shall pay rent of £900 per month.",
  "analysis": {
    "insights": [],
    "violations": [{
      "violation_type": "prohibited_fees",
      "severity": "serious",
      "evidence_text": "Email fees@agent.example for the £150 check-out fee"
    }]
  }
}`

type ServerSuite struct {
	suite.Suite
	router http.Handler
}

func (s *ServerSuite) SetupTest() {
	reg := prometheus.NewRegistry()
	srv := New(Options{
		Settings: func() (config.Settings, error) {
			return config.Settings{Scoring: weights.Default(), RedactionPatterns: []string{`£\d+`}}, nil
		},
		Logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Metrics:  metrics.New(reg),
		Gatherer: reg,
	})
	s.router = srv.Routes()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) TestAssess() {
	rec := s.do(http.MethodPost, "/v1/assessments", feeRequest)
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var a report.Assessment
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(s.T(), 74, a.Compliance.FinalScore)
	require.Len(s.T(), a.Violations, 1)
	assert.Equal(s.T(), "Email <redacted> for the <redacted> check-out fee", a.Violations[0].Evidence)
}

func (s *ServerSuite) TestAssessMissingInsights() {
	rec := s.do(http.MethodPost, "/v1/assessments", `{"analysis": {"summary": "x"}}`)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "insights")
}

func (s *ServerSuite) TestAssessInvalidJSON() {
	rec := s.do(http.MethodPost, "/v1/assessments", "not valid json")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestBatch() {
	body := `{"requests": [` + feeRequest + `, {"analysis": {}}, "oops"]}`
	rec := s.do(http.MethodPost, "/v1/assessments/batch", body)
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Items []struct {
			Index      int                `json:"index"`
			Assessment *report.Assessment `json:"assessment"`
			Error      string             `json:"error"`
		} `json:"items"`
	}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(s.T(), resp.Items, 3)
	assert.NotNil(s.T(), resp.Items[0].Assessment)
	assert.Contains(s.T(), resp.Items[1].Error, "insights")
	assert.Contains(s.T(), resp.Items[2].Error, "decode request")
}

func (s *ServerSuite) TestBatchBareArray() {
	rec := s.do(http.MethodPost, "/v1/assessments/batch", `[`+feeRequest+`, `+feeRequest+`]`)
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var resp batchResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(s.T(), resp.Items, 2)
	assert.Equal(s.T(), 1, resp.Items[1].Index)
	assert.NotNil(s.T(), resp.Items[1].Assessment)
}

func (s *ServerSuite) TestAssessHugeAmountStaysFinite() {
	body := `{"analysis": {"insights": [], "violations": [
	  {"violation_type": "unfair_terms", "severity": "serious", "financial_impact": 1e308}
	]}}`
	rec := s.do(http.MethodPost, "/v1/assessments", body)
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

	var a report.Assessment
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(s.T(), impact.MaxExposure, a.Impact.Financial.TotalExposure)
}

func (s *ServerSuite) TestThresholds() {
	rec := s.do(http.MethodGet, "/v1/thresholds", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp thresholdsResponse
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Less(s.T(), resp.Thresholds.Critical, 85.0)
	assert.Equal(s.T(), 70.0, resp.Config.TenantProtectionBias)
}

func (s *ServerSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/healthz", "")
	assert.Equal(s.T(), http.StatusOK, rec.Code)

	s.do(http.MethodPost, "/v1/assessments", feeRequest)
	rec = s.do(http.MethodGet, "/metrics", "")
	require.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), `tenancyscore_assessments_total{outcome="ok"} 1`)
}

func TestWriteJSONEncodeFailureIs500(t *testing.T) {
	srv := New(Options{
		Logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Gatherer: prometheus.NewRegistry(),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.writeJSON(rec, req, http.StatusOK, map[string]float64{"total": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestSettingsFailureIs500(t *testing.T) {
	srv := New(Options{
		Settings: func() (config.Settings, error) { return config.Settings{}, errors.New("disk gone") },
		Logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Gatherer: prometheus.NewRegistry(),
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(feeRequest))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
