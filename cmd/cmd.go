// Package cmd provides the CLI commands for the demo server.
//
// Commands:
//   - serve: HTTP server (static assets, /info, MCP over streamable HTTP)
//   - mcp: Model Context Protocol server on stdio (for Claude Desktop/Cursor)
//
// Both commands handle SIGINT/SIGTERM via context cancellation for
// graceful shutdown.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Yaakov-Belch/flyio-demo/internal/log"
)

// Execute is the main entry point for the CLI.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(log.New(log.Config{Level: level}))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "mcp":
		return runMCP()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("flyio-demo - MCP demo server with static file serving")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  flyio-demo serve [addr] Start HTTP server (default: 127.0.0.1:8080)")
	fmt.Println("  flyio-demo mcp          Start MCP server on stdio (for Claude Desktop/Cursor)")
	fmt.Println("  flyio-demo --version    Show version information")
	fmt.Println("  flyio-demo --help       Show this help")
	fmt.Println()
	fmt.Println("HTTP routes (serve mode):")
	fmt.Println("  /static/{filepath}      Static files from the asset root")
	fmt.Println("  /info                   Health check")
	fmt.Println("  /mcp                    MCP streamable HTTP endpoint")
	fmt.Println("  /                       Redirects to /static/")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DEMO_ADDR               Optional: listen address")
	fmt.Println("  DEMO_STATIC_DIR         Optional: static asset directory")
	fmt.Println("  DEBUG                   Optional: enable debug logging")
}
