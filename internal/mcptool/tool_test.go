package mcptool

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/weights"
)

const validRequest = `{"analysis": {"insights": [], "violations": [{"violation_type": "deposit_violation", "severity": "critical"}]}}`

func newTool() *AssessTool {
	return NewAssessTool(func() (config.Settings, error) {
		return config.Settings{Scoring: weights.Default()}, nil
	}, nil)
}

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestDefinition(t *testing.T) {
	def := newTool().Definition()
	if def.Name != ToolName {
		t.Fatalf("unexpected tool name %q", def.Name)
	}
	found := false
	for _, r := range def.InputSchema.Required {
		if r == "request" {
			found = true
		}
	}
	if !found {
		t.Fatalf("'request' should be required, got %v", def.InputSchema.Required)
	}
}

func TestHandleReturnsAssessment(t *testing.T) {
	r, err := newTool().Handle(t.Context(), makeReq(map[string]any{"request": validRequest}))
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if r.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(r))
	}

	var a report.Assessment
	if err := json.Unmarshal([]byte(resultText(r)), &a); err != nil {
		t.Fatalf("result is not an assessment: %v", err)
	}
	if len(a.Impact.Legal.RightsAtRisk) != 1 || a.Impact.Legal.RightsAtRisk[0] != "Deposit protection rights" {
		t.Fatalf("unexpected rights at risk: %v", a.Impact.Legal.RightsAtRisk)
	}
}

func TestHandleSummary(t *testing.T) {
	r, err := newTool().Handle(t.Context(), makeReq(map[string]any{"request": validRequest, "summary_only": true}))
	if err != nil || r.IsError {
		t.Fatalf("unexpected failure: %v %s", err, resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, "## Tenancy Assessment") || !strings.Contains(text, "deposit_violation (critical") {
		t.Fatalf("unexpected summary: %s", text)
	}
}

func TestHandleToolErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing request", map[string]any{}, "'request' is required"},
		{"missing insights", map[string]any{"request": `{"analysis": {}}`}, "insights"},
		{"bad json", map[string]any{"request": "{"}, "invalid request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newTool().Handle(t.Context(), makeReq(tt.args))
			if err != nil {
				t.Fatalf("unexpected Go error: %v", err)
			}
			if !r.IsError {
				t.Fatalf("expected tool error, got: %s", resultText(r))
			}
			if !strings.Contains(resultText(r), tt.want) {
				t.Errorf("error text %q does not contain %q", resultText(r), tt.want)
			}
		})
	}
}
