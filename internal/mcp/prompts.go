package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts registers the greeting prompts to the MCP server.
// Prompts: hello, hallo
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "hello",
		Description: "A simple greeting prompt",
	}, s.Hello)

	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "hallo",
		Description: "Eine einfache Begrüßungsaufforderung",
	}, s.Hallo)
}

// Hello handles the hello MCP prompt request.
func (s *Server) Hello(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "A simple greeting prompt",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: "Hello world!"}},
		},
	}, nil
}

// Hallo handles the hallo MCP prompt request.
func (s *Server) Hallo(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Eine einfache Begrüßungsaufforderung",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: "Hallo Welt!"}},
		},
	}, nil
}
