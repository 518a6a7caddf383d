// Package mcp exposes the mood log, insight ledger, journal entries,
// breathing sessions, mood quotes and the wellness views as Model Context
// Protocol tools over stdio.
package mcp

import (
	"database/sql"
	"time"

	"github.com/mark3labs/mcp-go/server"

	moodlog "github.com/unowned-ai/moodlog/pkg"
	"github.com/unowned-ai/moodlog/pkg/logger"
)

type Options struct {
	User     string
	Location *time.Location
	Log      *logger.Logger
}

type MoodlogMCPServer struct {
	mcpServer *server.MCPServer
	db        *sql.DB
	log       *logger.Logger
}

// NewMoodlogMCPServer builds an MCP server over an open, migrated database
// and registers every tool.
func NewMoodlogMCPServer(db *sql.DB, opts Options) *MoodlogMCPServer {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	s := server.NewMCPServer(
		"Moodlog MCP Server",
		moodlog.Version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	RegisterPingTool(s)
	RegisterLogMoodTool(s, db, opts.User)
	RegisterListMoodsTool(s, db, opts.User)
	RegisterDeleteMoodTool(s, db, opts.User)
	RegisterCreateInsightTool(s, db, opts.User)
	RegisterListInsightsTool(s, db, opts.User)
	RegisterDeleteInsightTool(s, db, opts.User)
	RegisterCreateEntryTool(s, db, opts.User)
	RegisterListEntriesTool(s, db, opts.User)
	RegisterDeleteEntryTool(s, db, opts.User)
	RegisterLogBreathingSessionTool(s, db, opts.User)
	RegisterListBreathingSessionsTool(s, db, opts.User)
	RegisterDeleteBreathingSessionTool(s, db, opts.User)
	RegisterGetMoodQuoteTool(s)
	RegisterGetWellnessViewsTool(s, db, opts.User, loc)

	log.Debug("MCP tools registered", "user", opts.User)
	return &MoodlogMCPServer{mcpServer: s, db: db, log: log}
}

// Start runs the stdio event loop until stdin closes.
func (s *MoodlogMCPServer) Start() error {
	s.log.Info("MCP server serving on stdio")
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the raw mcp-go server (useful for additional configuration).
func (s *MoodlogMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
