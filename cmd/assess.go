/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MOYARU/tenancyscore/internal/analysis"
	"github.com/MOYARU/tenancyscore/internal/app/output"
	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/logging"
	"github.com/MOYARU/tenancyscore/internal/report"
	"github.com/MOYARU/tenancyscore/internal/taxonomy"
	"github.com/spf13/cobra"
)

var (
	analysisPath string
	requestPath  string
	documentPath string
	htmlDocPath  string
	depth        string
	factors      []string
	vulnerable   bool
	firstTime    bool
	jsonOutput   bool
	outPath      string
	htmlReport   string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score one analysis result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest()
		if err != nil {
			return err
		}
		settings, sanitizer, err := loadSettings(configPath)
		if err != nil {
			return err
		}

		start := time.Now()
		a, err := report.Assess(req, settings.Scoring, report.WithSanitizer(sanitizer))
		if err != nil {
			return fmt.Errorf("assess: %w", err)
		}
		logging.New("cli").DebugContext(cmd.Context(), "assessment completed",
			"final_score", a.Compliance.FinalScore,
			"confidence", a.Confidence.OverallConfidence,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		w := cmd.OutOrStdout()
		if jsonOutput {
			if err := output.WriteJSON(w, a); err != nil {
				return err
			}
		} else {
			output.PrintAssessment(w, a, ui.Palette{Enabled: ui.ColorEnabled(os.Stdout)})
		}

		if outPath != "" {
			if err := output.SaveJSONReport(outPath, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%sJSON report saved to %s%s\n", ui.ColorGray, outPath, ui.ColorReset)
		}
		if htmlReport != "" {
			if err := output.SaveHTMLReport(htmlReport, a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%sHTML report saved to %s%s\n", ui.ColorGray, htmlReport, ui.ColorReset)
		}
		return nil
	},
}

// loadRequest builds the request from either a full request file or a bare
// analysis file plus document and context flags.
func loadRequest() (analysis.Request, error) {
	switch {
	case requestPath != "" && analysisPath != "":
		return analysis.Request{}, errors.New("--request and --analysis are mutually exclusive")
	case requestPath != "":
		f, err := os.Open(requestPath)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		return analysis.DecodeRequest(f)
	case analysisPath == "":
		return analysis.Request{}, errors.New("one of --analysis or --request is required")
	}

	f, err := os.Open(analysisPath)
	if err != nil {
		return analysis.Request{}, fmt.Errorf("open analysis: %w", err)
	}
	defer f.Close()
	res, err := analysis.DecodeResult(f)
	if err != nil {
		return analysis.Request{}, err
	}

	req := analysis.Request{Analysis: res, Context: flagContext()}
	if documentPath != "" {
		b, err := os.ReadFile(documentPath)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("read document: %w", err)
		}
		req.DocumentText = string(b)
	}
	if htmlDocPath != "" {
		b, err := os.ReadFile(htmlDocPath)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("read document: %w", err)
		}
		req.DocumentHTML = string(b)
	}
	return req, nil
}

func flagContext() analysis.Context {
	ctx := analysis.Context{AnalysisDepth: analysis.Depth(depth)}
	for _, f := range factors {
		ctx.ContextFactors = append(ctx.ContextFactors, taxonomy.ContextFactor(f))
	}
	if vulnerable || firstTime {
		ctx.TenantProfile = &analysis.TenantProfile{VulnerablePerson: vulnerable}
		if firstTime {
			ctx.TenantProfile.Experience = analysis.ExperienceFirstTime
		}
	}
	return ctx
}

func loadSettings(path string) (config.Settings, *report.Sanitizer, error) {
	settings, err := config.CachedSettings(path)
	if err != nil {
		return config.Settings{}, nil, err
	}
	sanitizer, err := report.NewSanitizer(settings.RedactionPatterns)
	if err != nil {
		return config.Settings{}, nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return settings, sanitizer, nil
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVar(&analysisPath, "analysis", "", "Analysis result JSON file")
	assessCmd.Flags().StringVar(&requestPath, "request", "", "Full request JSON file (document, analysis and context)")
	assessCmd.Flags().StringVar(&documentPath, "document", "", "Agreement text file")
	assessCmd.Flags().StringVar(&htmlDocPath, "document-html", "", "Agreement HTML file, used when --document is not given")
	assessCmd.Flags().StringVar(&depth, "depth", string(analysis.DepthStandard), "Analysis depth: basic, standard, comprehensive or expert")
	assessCmd.Flags().StringSliceVar(&factors, "factor", nil, "Context factor, repeatable (e.g. social_housing)")
	assessCmd.Flags().BoolVar(&vulnerable, "vulnerable", false, "Tenant is a vulnerable person")
	assessCmd.Flags().BoolVar(&firstTime, "first-time", false, "Tenant is renting for the first time")
	assessCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	assessCmd.Flags().StringVar(&outPath, "out", "", "Also save the JSON report to this file")
	assessCmd.Flags().StringVar(&htmlReport, "html-report", "", "Also save an HTML report to this file")
}
