package server

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"pkt.systems/pslog"

	"github.com/slidesmith/ppt-tools-mcp/internal/registry"
)

// Config carries the server's runtime settings.
type Config struct {
	// Version is reported during the MCP handshake.
	Version string

	// TemplateDirs are extra directories searched for presentation
	// templates, after the working directory, ./templates, and
	// $PPT_TEMPLATE_PATH.
	TemplateDirs []string
}

// Server owns the document registry and the MCP tool catalog.
type Server struct {
	store *registry.Store
	cfg   Config
	log   pslog.Logger
	mcp   *mcpserver.MCPServer
}

// New creates a server with all tools registered.
func New(cfg Config, logger pslog.Logger) *Server {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	s := &Server{
		store: registry.NewStore(),
		cfg:   cfg,
		log:   logger,
	}
	s.mcp = mcpserver.NewMCPServer(
		"ppt-tools-mcp",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(serverInstructions),
	)
	s.registerTools()
	return s
}

const serverInstructions = `Tools for creating and editing PowerPoint (.pptx)
presentations. Create or open a presentation first; it becomes the default
target for every other tool, or pass its presentation_id explicitly. Slide,
shape, and layout indexes are 0-based. Positions and sizes are in inches,
font sizes in points, colors as [r,g,b] 0-255 triples. Nothing touches disk
until save_presentation is called.`

// ServeStdio runs the server over stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio", "version", s.cfg.Version)
	return mcpserver.ServeStdio(s.mcp)
}

// ServeHTTP runs the server as a streamable-HTTP endpoint on addr.
func (s *Server) ServeHTTP(addr string) error {
	s.log.Info("serving MCP over http", "addr", addr, "version", s.cfg.Version)
	return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
}

// textResult marshals a result value into a JSON text content block.
func textResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// errResult reports a domain error as a tool error result. The Go error
// return stays nil: protocol-level errors are reserved for the transport.
func errResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
