// Package mcpadapter exposes the assistant over the Model Context Protocol
// so agent clients can load documents and ask questions through stdio.
package mcpadapter

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/studypdf/studypdf/internal/core/ports"
)

// Options carries the per-request defaults the tools fall back to when a
// call omits chunking or budget parameters.
type Options struct {
	Service         string
	Version         string
	ChunkSize       int
	ChunkOverlap    int
	MaxContextSize  int
	SummarySections int
}

type Server struct {
	loader    ports.DocumentIngestor
	assistant ports.AssistantService
	reader    ports.DocumentReader
	opts      Options
}

func NewServer(
	loader ports.DocumentIngestor,
	assistant ports.AssistantService,
	reader ports.DocumentReader,
	opts Options,
) *Server {
	return &Server{
		loader:    loader,
		assistant: assistant,
		reader:    reader,
		opts:      opts,
	}
}

// MCPServer builds the protocol server with every tool registered. The
// toolset is static, so list-changed notifications stay off.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(
		s.opts.Service,
		s.opts.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	srv.AddTool(loadDocumentTool(), s.loadDocument)
	srv.AddTool(listDocumentsTool(), s.listDocuments)
	srv.AddTool(askDocumentTool(), s.askDocument)
	srv.AddTool(summarizeDocumentTool(), s.summarizeDocument)
	return srv
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.MCPServer())
}
