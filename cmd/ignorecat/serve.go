package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	ignorecatmcp "github.com/gorewood/ignorecat/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var readOnlyFlag bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run ignorecat as a Model Context Protocol (MCP) server over stdio.

This exposes the template catalog as MCP tools that any MCP-capable agent
environment can use. Edits to the settings file are picked up while the
server runs.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "ignorecat": {
        "command": "ignorecat",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, show_template, star_template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}

			if a.settings.Path() != "" {
				err := a.settings.Watch(func() {
					a.logger.Debug("settings reloaded", "path", a.settings.Path())
				})
				if err != nil {
					a.logger.Warn("not watching settings", "error", err)
				}
			}

			var starrer ignorecatmcp.Starrer
			if !readOnlyFlag {
				starrer = a.settings
			}
			server := ignorecatmcp.NewServer(buildVersion(), a.catalog, starrer)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().BoolVar(&readOnlyFlag, "read-only", false, "Do not expose tools that change settings")

	return cmd
}
