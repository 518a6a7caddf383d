package main

import (
	"github.com/spf13/cobra"

	"github.com/unowned-ai/moodlog/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the moodlog MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes mood logging,
weekly reflections, journal entries and the wellness views as MCP tools via STDIO.

All records are read and written for the configured user. Logs go to stderr so
the JSON-RPC stream on stdout stays clean.

The --db flag is optional. If not provided, a system-specific default location will be used:
- Windows: %USERPROFILE%\AppData\Roaming\moodlog\moodlog.db
- macOS: ~/Library/Application Support/moodlog/moodlog.db
- Linux: ~/.local/share/moodlog/moodlog.db

Example:
  moodlog mcp
  moodlog mcp --db moodlog.db --user alice --tz Europe/Berlin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(dbConn)

		srv := mcp.NewMoodlogMCPServer(dbConn, mcp.Options{
			User:     cfg.User,
			Location: location(),
			Log:      log.With("component", "mcp"),
		})
		return srv.Start()
	},
}
