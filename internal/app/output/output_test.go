package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

func sampleAssessment(t *testing.T) *report.Assessment {
	t.Helper()
	req := analysis.Request{
		Analysis: &analysis.Result{
			Insights: []analysis.Insight{},
			Violations: []analysis.Violation{{
				Finding: analysis.Finding{
					ViolationType: taxonomy.ProhibitedFees,
					Severity:      taxonomy.SeveritySerious,
					Title:         "Check-out fee <script>",
					EvidenceText:  "A check-out fee of £150 applies",
				},
				Remediation: "Remove the fee",
			}},
		},
	}
	a, err := report.Assess(req, nil, report.WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("Assess() error: %v", err)
	}
	return a
}

func TestPrintAssessmentPlain(t *testing.T) {
	var buf bytes.Buffer
	PrintAssessment(&buf, sampleAssessment(t), ui.Palette{})

	out := buf.String()
	for _, want := range []string{"Final score: 74/100", "tenant_fees_act: 80", "[CRITICAL] (prohibited_fees)", "Fix: Remove the fee", "Protection from prohibited fees"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("plain output must not contain colour codes")
	}
}

func TestPrintBatch(t *testing.T) {
	items := []report.BatchItem{
		{Index: 0, Assessment: sampleAssessment(t)},
		{Index: 1, Err: errors.New("analysis result has no insights field")},
	}
	var buf bytes.Buffer
	PrintBatch(&buf, []string{"a.json", "b.json"}, items, ui.Palette{})

	out := buf.String()
	if !strings.Contains(out, "[OK] a.json: compliance 74") || !strings.Contains(out, "[ERROR] b.json") {
		t.Fatalf("unexpected batch output:\n%s", out)
	}
}

func TestSaveJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), ReportFilename(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), "json"))
	if filepath.Base(path) != "tenancy_report_20260301_090000.json" {
		t.Fatalf("unexpected report name %q", filepath.Base(path))
	}
	if err := SaveJSONReport(path, sampleAssessment(t)); err != nil {
		t.Fatalf("SaveJSONReport() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	var doc struct {
		Compliance struct {
			FinalScore int `json:"final_score"`
		} `json:"compliance"`
		Metadata struct {
			EngineVersion string `json:"engine_version"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if doc.Compliance.FinalScore != 74 || doc.Metadata.EngineVersion == "" {
		t.Fatalf("unexpected report: %+v", doc)
	}
}

func TestWriteHTMLReportEscapes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTMLReport(&buf, sampleAssessment(t)); err != nil {
		t.Fatalf("WriteHTMLReport() error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("titles must be escaped")
	}
	if !strings.Contains(out, "Check-out fee &lt;script&gt;") || !strings.Contains(out, `class="violation critical"`) {
		t.Fatalf("unexpected html:\n%s", out)
	}
}
