// Package mcp implements the demo's Model Context Protocol (MCP) server.
//
// The server registers two tools (mirror_tool, add) and two greeting
// prompts (hello, hallo) with the official MCP Go SDK, which owns all
// protocol concerns: registration, transports and session handling.
//
// Tool handlers follow the net/http.Handler pattern:
//
//  1. Define an input struct with JSON tags and descriptions
//  2. Infer the JSON schema using jsonschema-go
//  3. Register the handler with mcp.AddTool and build responses inline
//
// The server runs either on a stdio transport (Run) for editor/desktop
// clients, or mounted into the HTTP server via HTTPHandler (streamable
// HTTP transport).
package mcp
