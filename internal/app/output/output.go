package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
)

// PrintAssessment writes a human-readable assessment to w.
func PrintAssessment(w io.Writer, a *report.Assessment, p ui.Palette) {
	c := a.Compliance
	fmt.Fprintf(w, "\n%s\n", p.Paint(ui.ColorWhite, "Compliance"))
	fmt.Fprintf(w, " - Final score: %s (before conservatism %d, penalty %.2f)\n",
		p.Paint(p.Score(c.FinalScore), fmt.Sprintf("%d/100", c.FinalScore)), c.TotalScore, c.TotalPenalty)
	fmt.Fprintf(w, " - Penalties: %d critical, %d serious, %d moderate, %d minor\n",
		c.PenaltyCounts.Critical, c.PenaltyCounts.Serious, c.PenaltyCounts.Moderate, c.PenaltyCounts.Minor)

	affected := affectedAreas(a)
	if len(affected) > 0 {
		fmt.Fprintln(w, " - Affected areas:")
		for _, area := range affected {
			score := c.CategoryScores[area]
			fmt.Fprintf(w, "   - %s: %s\n", area, p.Paint(p.Score(score), fmt.Sprintf("%d", score)))
		}
	}

	m := a.Confidence
	fmt.Fprintf(w, "\n%s\n", p.Paint(ui.ColorWhite, "Confidence"))
	fmt.Fprintf(w, " - Overall: %s (95%% interval %.1f to %.1f)\n",
		p.Paint(p.Score(m.OverallConfidence), fmt.Sprintf("%d%%", m.OverallConfidence)), m.Interval.Lower, m.Interval.Upper)
	fmt.Fprintf(w, " - Data quality %d, completeness %d, legal certainty %d, clarity %d\n",
		m.DataQuality, m.AnalysisCompleteness, m.LegalCertainty, m.DocumentClarity)

	fin := a.Impact.Financial
	fmt.Fprintf(w, "\n%s\n", p.Paint(ui.ColorWhite, "Impact"))
	fmt.Fprintf(w, " - Financial exposure: %.2f (immediate %.2f, ongoing %.2f, legal costs %.2f)\n",
		fin.TotalExposure, fin.ImmediateRisk, fin.OngoingRisk, fin.RiskCategories["legal_costs"])
	legal := a.Impact.Legal
	fmt.Fprintf(w, " - Legal risk: enforcement %d, litigation %d, regulatory %d\n",
		legal.EnforcementRisk, legal.LitigationRisk, legal.RegulatoryRisk)
	for _, r := range legal.RightsAtRisk {
		fmt.Fprintf(w, "   - %s\n", r)
	}
	pr := a.Impact.Practical
	fmt.Fprintf(w, " - Practical: living %d, tenure %d, day-to-day %d, future %d\n",
		pr.LivingConditions, pr.SecurityOfTenure, pr.DayToDayLiving, pr.FutureOptions)

	if len(a.Violations) == 0 {
		fmt.Fprintf(w, "\n%s\n", p.Paint(ui.ColorGreen, "No violations reported."))
		return
	}

	entries := append([]report.ViolationEntry(nil), a.Violations...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })

	fmt.Fprintf(w, "\n%s\n", p.Paint(ui.ColorWhite, "Violations"))
	for _, v := range entries {
		sev := string(v.RecommendedSeverity)
		title := v.Title
		if title == "" {
			title = string(v.ViolationType)
		}
		fmt.Fprintf(w, "\n%s\n", p.Paint(p.Severity(sev), fmt.Sprintf("[%s] (%s) %s", strings.ToUpper(sev), v.ViolationType, title)))
		fmt.Fprintf(w, "%s\n", p.Paint(ui.ColorGray, fmt.Sprintf(" - Score: %.2f (reported %s)", v.Score, v.Severity)))
		if v.Evidence != "" {
			fmt.Fprintf(w, "%s\n", p.Paint(ui.ColorGray, " - Evidence: "+v.Evidence))
		}
		if v.Remediation != "" {
			fmt.Fprintf(w, "%s\n", p.Paint(ui.ColorGray, " - Fix: "+v.Remediation))
		}
		fmt.Fprintf(w, "%s\n", p.Paint(ui.ColorGray, fmt.Sprintf(" - Evidence Quality: %d/100", v.EvidenceQuality)))
	}
}

// PrintBatch writes one line per batch item.
func PrintBatch(w io.Writer, names []string, items []report.BatchItem, p ui.Palette) {
	for i, it := range items {
		name := fmt.Sprintf("#%d", it.Index)
		if i < len(names) {
			name = names[i]
		}
		if it.Err != nil {
			fmt.Fprintf(w, " [%s] %s: %s\n", p.Paint(ui.ColorRed, "ERROR"), name, it.Err)
			continue
		}
		a := it.Assessment
		fmt.Fprintf(w, " [%s] %s: compliance %d, confidence %d%%, exposure %.2f, %d violations\n",
			p.Paint(p.Score(a.Compliance.FinalScore), "OK"), name,
			a.Compliance.FinalScore, a.Confidence.OverallConfidence, a.Impact.Financial.TotalExposure, len(a.Violations))
	}
}

// affectedAreas lists areas scoring below 100 in catalogue order.
func affectedAreas(a *report.Assessment) []taxonomy.LegalArea {
	var out []taxonomy.LegalArea
	for _, area := range taxonomy.LegalAreas {
		if s, ok := a.Compliance.CategoryScores[area]; ok && s < 100 {
			out = append(out, area)
		}
	}
	return out
}
