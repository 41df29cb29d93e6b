package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/folio/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the portfolio content as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := newApp(cfg, logger, nil, nil)
		if err != nil {
			return err
		}
		if _, err := a.Reload(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nTools will report that no content is loaded until reload_content succeeds.\n", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "folio MCP server started on stdio (snapshot=%s)\n", a.Current().ID)
		return mcpserver.NewServer(a).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
