/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"fmt"

	"github.com/MOYARU/tenancyscore/internal/app/output"
	"github.com/MOYARU/tenancyscore/internal/scoring"
	"github.com/spf13/cobra"
)

var thresholdsJSON bool

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print the severity cut points for the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := loadSettings(configPath)
		if err != nil {
			return err
		}
		t := scoring.CalibrateThresholds(settings.Scoring)
		if thresholdsJSON {
			return output.WriteJSON(cmd.OutOrStdout(), t)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "critical  >= %.2f\n", t.Critical)
		fmt.Fprintf(w, "serious   >= %.2f\n", t.Serious)
		fmt.Fprintf(w, "moderate  >= %.2f\n", t.Moderate)
		fmt.Fprintf(w, "minor     >= %.2f\n", t.Minor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(thresholdsCmd)
	thresholdsCmd.Flags().BoolVar(&thresholdsJSON, "json", false, "Output thresholds as JSON")
}
