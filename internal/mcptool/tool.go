// Package mcptool exposes assessments to MCP clients.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/report"
)

const ToolName = "assess_tenancy_analysis"

// AssessTool handles the assess_tenancy_analysis MCP tool.
type AssessTool struct {
	settings func() (config.Settings, error)
	logger   *slog.Logger
}

// NewAssessTool creates an AssessTool. settings is consulted on every call.
func NewAssessTool(settings func() (config.Settings, error), logger *slog.Logger) *AssessTool {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessTool{settings: settings, logger: logger}
}

// Definition returns the MCP tool definition for assess_tenancy_analysis.
func (t *AssessTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription(
			"Score a tenancy agreement analysis: compliance score, confidence in the analysis, "+
				"and financial, legal and practical impact on the tenant.",
		),
		mcp.WithString("request",
			mcp.Required(),
			mcp.Description(`JSON assessment request: {"document_text": "...", "analysis": {"insights": [...], "violations": [...]}, "context": {...}}`),
		),
		mcp.WithBoolean("summary_only",
			mcp.Description("Return a short markdown summary instead of the full JSON assessment"),
		),
	)
}

// Handle processes the assess_tenancy_analysis tool call.
func (t *AssessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("request", "")
	if strings.TrimSpace(raw) == "" {
		return mcp.NewToolResultError("'request' is required"), nil
	}

	in, err := analysis.DecodeRequest(strings.NewReader(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid request: %v", err)), nil
	}

	settings, err := t.settings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load scoring config: %v", err)), nil
	}
	sanitizer, err := report.NewSanitizer(settings.RedactionPatterns)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load scoring config: %v", err)), nil
	}

	a, err := report.Assess(in, settings.Scoring, report.WithSanitizer(sanitizer))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("assessment failed: %v", err)), nil
	}
	t.logger.InfoContext(ctx, "assessment completed",
		"tool", ToolName,
		"final_score", a.Compliance.FinalScore,
		"confidence", a.Confidence.OverallConfidence,
	)

	if req.GetBool("summary_only", false) {
		return mcp.NewToolResultText(summary(a)), nil
	}

	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode assessment: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func summary(a *report.Assessment) string {
	var b strings.Builder
	b.WriteString("## Tenancy Assessment\n\n")
	fmt.Fprintf(&b, "- **Compliance**: %d/100 (penalty %.2f)\n", a.Compliance.FinalScore, a.Compliance.TotalPenalty)
	fmt.Fprintf(&b, "- **Confidence**: %d%% (95%% interval %.1f to %.1f)\n",
		a.Confidence.OverallConfidence, a.Confidence.Interval.Lower, a.Confidence.Interval.Upper)
	fmt.Fprintf(&b, "- **Financial exposure**: %.2f\n", a.Impact.Financial.TotalExposure)

	if len(a.Impact.Legal.RightsAtRisk) > 0 {
		fmt.Fprintf(&b, "- **Rights at risk**: %s\n", strings.Join(a.Impact.Legal.RightsAtRisk, ", "))
	}
	if len(a.Violations) > 0 {
		b.WriteString("\n### Violations\n\n")
		for _, v := range a.Violations {
			fmt.Fprintf(&b, "- %s (%s, recommended %s): score %.2f\n", v.ViolationType, v.Severity, v.RecommendedSeverity, v.Score)
		}
	}
	return b.String()
}
