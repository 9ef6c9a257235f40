/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"github.com/MOYARU/tenancyscore/internal/app/ui"
	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/logging"
	"github.com/MOYARU/tenancyscore/internal/metrics"
	"github.com/MOYARU/tenancyscore/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve assessments over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := config.ServerFromEnv()
		if cmd.Flags().Changed("config") {
			sc.ConfigPath = configPath
		}

		ctx, cancel := ui.WaitForCancel(cmd.Context())
		defer cancel()

		srv := server.New(server.Options{
			Settings:     func() (config.Settings, error) { return config.CachedSettings(sc.ConfigPath) },
			Logger:       logging.New("server"),
			Metrics:      metrics.New(nil),
			BatchWorkers: sc.BatchWorkers,
		})
		return srv.ListenAndServe(ctx, sc.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
