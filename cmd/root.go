/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/logging"
	appver "github.com/MOYARU/tenancyscore/internal/version"
	"github.com/spf13/cobra"
)

var (
	version = appver.Value

	logLevel   string
	logFormat  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tenancyscore",
	Short: "tenancyscore scores tenancy agreement analyses for compliance, confidence and tenant impact.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(envDefault(cmd, "log-level", "TENANCY_LOG_LEVEL", logLevel))
		if err != nil {
			return err
		}
		logging.Init(level, envDefault(cmd, "log-format", "TENANCY_LOG_FORMAT", logFormat))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", ui.ColorRed, err, ui.ColorReset)
		os.Exit(1)
	}
}

// envDefault returns the environment value for a flag the user did not set.
func envDefault(cmd *cobra.Command, flag, env, current string) string {
	if cmd.Flags().Changed(flag) {
		return current
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	return current
}

func init() {
	rootCmd.Version = version

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Scoring overlay file")

	rootCmd.Long = `
tenancyscore turns the findings of a tenancy agreement review into numbers:
a compliance score, a confidence rating for the review itself, and the
financial, legal and practical impact on the tenant.

Usage:
   tenancyscore [command] [flags]

Example:
  tenancyscore assess --analysis result.json --document agreement.txt
  tenancyscore assess --request request.json --json --out report.json
  tenancyscore batch ./requests --workers 8
  tenancyscore thresholds --config .tenancy.yaml
  tenancyscore serve
  tenancyscore mcp

Environment:
  TENANCY_LOG_LEVEL       Default for --log-level
  TENANCY_LOG_FORMAT      Default for --log-format
  TENANCY_ADDR            serve listen address (default :8080)
  TENANCY_CONFIG          serve overlay file (default .tenancy.yaml)
  TENANCY_BATCH_WORKERS   serve batch parallelism (default 4)

Scores are decision support for a reviewer, not legal advice.
`
}
