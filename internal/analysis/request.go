package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

var (
	ErrMissingAnalysis = errors.New("analysis result is missing")
	ErrMissingInsights = errors.New("analysis result has no insights field")
)

// Request is everything one assessment needs from the caller.
type Request struct {
	DocumentText string  `json:"document_text,omitempty"`
	DocumentHTML string  `json:"document_html,omitempty"`
	Analysis     *Result `json:"analysis"`
	Context      Context `json:"context,omitempty"`
}

// Text returns the plain document text, converting DocumentHTML when no
// plain text was supplied.
func (r Request) Text() string {
	if strings.TrimSpace(r.DocumentText) == "" && r.DocumentHTML != "" {
		return TextFromHTML(r.DocumentHTML)
	}
	return r.DocumentText
}

func (r Request) Validate() error {
	if r.Analysis == nil {
		return ErrMissingAnalysis
	}
	return r.Analysis.Validate()
}

// Validate enforces the boundary contract. Insights may be empty but not absent.
func (res *Result) Validate() error {
	if res == nil {
		return ErrMissingAnalysis
	}
	if res.Insights == nil {
		return ErrMissingInsights
	}
	return nil
}

// Normalize maps severity aliases onto the canonical levels and trims
// violation type labels. It edits res in place.
func (res *Result) Normalize() {
	if res == nil {
		return
	}
	for i := range res.Insights {
		normalizeFinding(&res.Insights[i].Finding)
	}
	for i := range res.Violations {
		normalizeFinding(&res.Violations[i].Finding)
	}
}

func normalizeFinding(f *Finding) {
	f.Severity = taxonomy.ParseSeverity(string(f.Severity))
	f.ViolationType = taxonomy.ViolationType(strings.ToLower(strings.TrimSpace(string(f.ViolationType))))
}

// DecodeRequest reads a JSON request, normalises it and validates it.
func DecodeRequest(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	req.Analysis.Normalize()
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// DecodeResult reads a bare analysis results object.
func DecodeResult(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	res.Normalize()
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
