package mcp

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// connectServer creates a demo MCP server and an SDK client connected via
// in-memory transports. Returns the client session for making protocol
// calls. Both sessions are cleaned up via t.Cleanup.
func connectServer(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server, err := NewServer(validConfig())
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

// callToolText calls the named tool and returns its single text content.
func callToolText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) string {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) unexpected error: %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool(%s) returned error result", name)
	}
	if len(result.Content) == 0 {
		t.Fatalf("CallTool(%s) returned empty content", name)
	}

	textContent, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s) content[0] type = %T, want *mcp.TextContent", name, result.Content[0])
	}
	return textContent.Text
}

// TestProtocol_ListTools verifies that tools/list returns both registered
// tools with non-empty descriptions.
func TestProtocol_ListTools(t *testing.T) {
	session := connectServer(t)

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() unexpected error: %v", err)
	}

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		if tool.Description == "" {
			t.Errorf("ListTools() tool %q has empty description", tool.Name)
		}
	}
	sort.Strings(names)

	wantNames := []string{"add", "mirror_tool"}
	if len(names) != len(wantNames) {
		t.Fatalf("ListTools() returned %d tools, want %d\ngot:  %v\nwant: %v", len(names), len(wantNames), names, wantNames)
	}
	for i, got := range names {
		if got != wantNames[i] {
			t.Errorf("ListTools() tool[%d] = %q, want %q", i, got, wantNames[i])
		}
	}
}

// TestProtocol_CallTool_Mirror verifies tools/call end-to-end for mirror_tool.
func TestProtocol_CallTool_Mirror(t *testing.T) {
	session := connectServer(t)

	tests := []struct {
		text string
		want string
	}{
		{text: "hello", want: "olleh"},
		{text: "", want: ""},
		{text: "héllo wörld", want: "dlröw olléh"},
	}

	for _, tt := range tests {
		got := callToolText(t, session, "mirror_tool", map[string]any{"text": tt.text})
		if got != tt.want {
			t.Errorf("mirror_tool(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// TestProtocol_CallTool_Add verifies tools/call end-to-end for add.
func TestProtocol_CallTool_Add(t *testing.T) {
	session := connectServer(t)

	tests := []struct {
		a, b int
		want string
	}{
		{a: 1, b: 2, want: "3"},
		{a: -5, b: 5, want: "0"},
		{a: 0, b: 0, want: "0"},
	}

	for _, tt := range tests {
		got := callToolText(t, session, "add", map[string]any{"a": tt.a, "b": tt.b})
		if got != tt.want {
			t.Errorf("add(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestProtocol_CallTool_UnknownTool verifies that calling a non-existent
// tool returns a proper error through the JSON-RPC layer.
func TestProtocol_CallTool_UnknownTool(t *testing.T) {
	session := connectServer(t)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "nonexistent_tool",
	})
	if err == nil {
		t.Fatal("CallTool(nonexistent_tool) expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent_tool") {
		t.Errorf("CallTool(nonexistent_tool) error = %q, want to contain tool name", err.Error())
	}
}

// TestProtocol_ListPrompts verifies that prompts/list returns both prompts.
func TestProtocol_ListPrompts(t *testing.T) {
	session := connectServer(t)

	result, err := session.ListPrompts(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListPrompts() unexpected error: %v", err)
	}

	var names []string
	for _, prompt := range result.Prompts {
		names = append(names, prompt.Name)
	}
	sort.Strings(names)

	wantNames := []string{"hallo", "hello"}
	if len(names) != len(wantNames) {
		t.Fatalf("ListPrompts() returned %v, want %v", names, wantNames)
	}
	for i, got := range names {
		if got != wantNames[i] {
			t.Errorf("ListPrompts() prompt[%d] = %q, want %q", i, got, wantNames[i])
		}
	}
}

// TestProtocol_GetPrompt verifies prompts/get for both greetings.
func TestProtocol_GetPrompt(t *testing.T) {
	session := connectServer(t)

	tests := []struct {
		name string
		want string
	}{
		{name: "hello", want: "Hello world!"},
		{name: "hallo", want: "Hallo Welt!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := session.GetPrompt(context.Background(), &mcp.GetPromptParams{Name: tt.name})
			if err != nil {
				t.Fatalf("GetPrompt(%s) unexpected error: %v", tt.name, err)
			}
			if len(result.Messages) != 1 {
				t.Fatalf("GetPrompt(%s) returned %d messages, want 1", tt.name, len(result.Messages))
			}

			textContent, ok := result.Messages[0].Content.(*mcp.TextContent)
			if !ok {
				t.Fatalf("GetPrompt(%s) content type = %T, want *mcp.TextContent", tt.name, result.Messages[0].Content)
			}
			if textContent.Text != tt.want {
				t.Errorf("GetPrompt(%s) text = %q, want %q", tt.name, textContent.Text, tt.want)
			}
		})
	}
}
