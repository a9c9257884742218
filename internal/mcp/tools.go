package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MirrorInput defines the input schema for the mirror_tool tool.
type MirrorInput struct {
	Text string `json:"text" jsonschema:"The text to mirror"`
}

// AddInput defines the input schema for the add tool.
type AddInput struct {
	A int `json:"a" jsonschema:"First addend"`
	B int `json:"b" jsonschema:"Second addend"`
}

// registerTools registers all demo tools to the MCP server.
// Tools: mirror_tool, add
func (s *Server) registerTools() error {
	// mirror_tool
	mirrorSchema, err := jsonschema.For[MirrorInput](nil)
	if err != nil {
		return fmt.Errorf("schema for mirror_tool: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mirror_tool",
		Description: "Mirror a text",
		InputSchema: mirrorSchema,
	}, s.Mirror)

	// add
	addSchema, err := jsonschema.For[AddInput](nil)
	if err != nil {
		return fmt.Errorf("schema for add: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add",
		Description: "Add two numbers",
		InputSchema: addSchema,
	}, s.Add)

	return nil
}

// Mirror handles the mirror_tool MCP tool call.
// The text is reversed rune-wise, so multi-byte characters survive intact.
func (s *Server) Mirror(ctx context.Context, req *mcp.CallToolRequest, input MirrorInput) (*mcp.CallToolResult, any, error) {
	runes := []rune(input.Text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(runes)}},
	}, nil, nil
}

// Add handles the add MCP tool call.
func (s *Server) Add(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, any, error) {
	sum := input.A + input.B

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: strconv.Itoa(sum)}},
	}, nil, nil
}
