package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/folio/internal/app"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the loaded portfolio to agents.
type Server struct {
	app *app.App
	mcp *server.MCPServer
}

// NewServer creates a new MCP server reading snapshots from a.
func NewServer(a *app.App) *Server {
	s := &Server{app: a}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listAchievementsTool, s.handleListAchievements)
	s.mcp.AddTool(listSkillsTool, s.handleListSkills)
	s.mcp.AddTool(getSkillTool, s.handleGetSkill)
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(skillCloudTool, s.handleSkillCloud)
	s.mcp.AddTool(reloadContentTool, s.handleReloadContent)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
