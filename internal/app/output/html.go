package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

type areaRow struct {
	Area  taxonomy.LegalArea
	Score int
}

type htmlReportData struct {
	*report.Assessment
	GeneratedAt string
	Areas       []areaRow
	Categories  []categoryRow
}

type categoryRow struct {
	Name   string
	Amount float64
}

func buildHTMLData(a *report.Assessment) htmlReportData {
	data := htmlReportData{
		Assessment:  a,
		GeneratedAt: a.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
	}
	for _, area := range affectedAreas(a) {
		data.Areas = append(data.Areas, areaRow{Area: area, Score: a.Compliance.CategoryScores[area]})
	}
	for _, name := range []string{"immediate", "ongoing", "legal_costs"} {
		data.Categories = append(data.Categories, categoryRow{Name: name, Amount: a.Impact.Financial.RiskCategories[name]})
	}
	return data
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).Parse(htmlTemplate))

// WriteHTMLReport renders a standalone HTML report of a.
func WriteHTMLReport(w io.Writer, a *report.Assessment) error {
	return reportTemplate.Execute(w, buildHTMLData(a))
}

// SaveHTMLReport writes the HTML report to path.
func SaveHTMLReport(path string, a *report.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := WriteHTMLReport(f, a); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Tenancy Agreement Assessment</title>
    <style>
        :root {
            --text: #16324d;
            --muted: #5b738c;
            --line: #d9e1ea;
            --critical: #9b2c9b;
            --serious: #d64545;
            --moderate: #e6a900;
            --minor: #1d6eea;
            --informational: #6f7f8f;
        }
        * { box-sizing: border-box; }
        body { font-family: "Segoe UI", "Inter", "Helvetica Neue", Arial, sans-serif; color: var(--text); margin: 0; padding: 28px 16px 40px; }
        .page { max-width: 1040px; margin: 0 auto; }
        h1, h2 { color: #0b3d6e; }
        .meta { color: var(--muted); }
        .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 14px; margin: 20px 0; }
        .card { border: 1px solid var(--line); border-radius: 12px; padding: 18px; text-align: center; }
        .card h3 { margin: 0; font-size: 2rem; }
        .card p { margin: 4px 0 0; color: var(--muted); font-weight: 600; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--line); }
        .violation { border: 1px solid var(--line); border-left: 6px solid #a7b7c7; border-radius: 12px; padding: 14px; margin-bottom: 12px; }
        .violation.critical { border-left-color: var(--critical); }
        .violation.serious { border-left-color: var(--serious); }
        .violation.moderate { border-left-color: var(--moderate); }
        .violation.minor { border-left-color: var(--minor); }
        .violation.informational { border-left-color: var(--informational); }
        .evidence { background: #f6f8fa; padding: 8px; border-radius: 8px; font-family: monospace; white-space: pre-wrap; }
    </style>
</head>
<body>
<div class="page">
    <h1>Tenancy Agreement Assessment</h1>
    <p class="meta">Generated {{.GeneratedAt}} by {{.Metadata.EngineVersion}}{{with .Metadata.DocumentType}} &middot; {{.}}{{end}}</p>

    <div class="cards">
        <div class="card"><h3>{{.Compliance.FinalScore}}</h3><p>Compliance score</p></div>
        <div class="card"><h3>{{.Confidence.OverallConfidence}}%</h3><p>Confidence</p></div>
        <div class="card"><h3>{{money .Impact.Financial.TotalExposure}}</h3><p>Financial exposure</p></div>
        <div class="card"><h3>{{len .Violations}}</h3><p>Violations</p></div>
    </div>

    <h2>Compliance</h2>
    <p>Penalty {{printf "%.2f" .Compliance.TotalPenalty}}: {{.Compliance.PenaltyCounts.Critical}} critical, {{.Compliance.PenaltyCounts.Serious}} serious, {{.Compliance.PenaltyCounts.Moderate}} moderate, {{.Compliance.PenaltyCounts.Minor}} minor.</p>
    {{if .Areas}}
    <table>
        <thead><tr><th>Legal area</th><th>Score</th></tr></thead>
        <tbody>{{range .Areas}}<tr><td>{{.Area}}</td><td>{{.Score}}</td></tr>{{end}}</tbody>
    </table>
    {{end}}

    <h2>Confidence</h2>
    <table>
        <tbody>
            <tr><td>Data quality</td><td>{{.Confidence.DataQuality}}</td></tr>
            <tr><td>Analysis completeness</td><td>{{.Confidence.AnalysisCompleteness}}</td></tr>
            <tr><td>Legal certainty</td><td>{{.Confidence.LegalCertainty}}</td></tr>
            <tr><td>Document clarity</td><td>{{.Confidence.DocumentClarity}}</td></tr>
            <tr><td>95% interval</td><td>{{printf "%.1f" .Confidence.Interval.Lower}} to {{printf "%.1f" .Confidence.Interval.Upper}}</td></tr>
        </tbody>
    </table>

    <h2>Impact</h2>
    <table>
        <thead><tr><th>Risk category</th><th>Amount</th></tr></thead>
        <tbody>{{range .Categories}}<tr><td>{{.Name}}</td><td>{{money .Amount}}</td></tr>{{end}}</tbody>
    </table>
    {{with .Impact.Legal}}
    <p>Enforcement {{.EnforcementRisk}}, litigation {{.LitigationRisk}}, regulatory {{.RegulatoryRisk}}.</p>
    {{if .RightsAtRisk}}<ul>{{range .RightsAtRisk}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{end}}
    {{with .Impact.Practical}}
    <p>Living conditions {{.LivingConditions}}, security of tenure {{.SecurityOfTenure}}, day-to-day living {{.DayToDayLiving}}, future options {{.FutureOptions}}.</p>
    {{end}}

    <h2>Violations</h2>
    {{range .Violations}}
    <div class="violation {{.RecommendedSeverity}}">
        <strong>[{{upper (print .RecommendedSeverity)}}] {{if .Title}}{{.Title}}{{else}}{{.ViolationType}}{{end}}</strong>
        <p>Score {{printf "%.2f" .Score}}, reported {{.Severity}}, evidence quality {{.EvidenceQuality}}/100</p>
        {{if .Evidence}}<div class="evidence">{{.Evidence}}</div>{{end}}
        {{if .Remediation}}<p>Fix: {{.Remediation}}</p>{{end}}
    </div>
    {{else}}
    <p>No violations reported.</p>
    {{end}}
</div>
</body>
</html>
`
