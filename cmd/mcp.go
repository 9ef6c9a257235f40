/*
Copyright (c) 2026 moyaru <rbffo@icloud.com>
*/

package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/logging"
	"github.com/MOYARU/tenancyscore/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newMCPServer(configPath)
		// stdout carries the protocol; logs stay on stderr.
		return server.ServeStdio(s)
	},
}

func newMCPServer(path string) *server.MCPServer {
	s := server.NewMCPServer(
		"tenancyscore",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Call assess_tenancy_analysis with the JSON output of a tenancy agreement review to get compliance, confidence and impact scores."),
	)

	tool := mcptool.NewAssessTool(func() (config.Settings, error) {
		return config.CachedSettings(path)
	}, logging.New("mcp"))
	s.AddTool(tool.Definition(), tool.Handle)
	return s
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
