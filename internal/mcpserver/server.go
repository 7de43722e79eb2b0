// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes dref reference resolution as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/dref"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `dref MCP server: resolves $ref references in JSON and YAML documents.

A document is given either as a file path or as inline content. File references ("other.yaml#/key") are resolved relative to the file's directory, or relative to dir for inline content. Internal references ("#/key") are only resolved when internal=true, except by pluck, which always resolves them.

Configuration: defaults are configurable via DREF_MCP_* environment variables set in your MCP client config.

Key settings:
- DREF_MCP_INTERNAL (default: false): resolve internal references by default
- DREF_MCP_MAX_DEPTH (default: 100): longest reference chain followed
- DREF_MCP_MAX_FILE_SIZE (default: 10MB): largest external file loaded
- DREF_MCP_CACHE_SIZE (default: 32): decoded files kept per tool call
- DREF_MCP_MAX_INLINE_SIZE (default: 1MB): largest inline content accepted`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "dref", Version: dref.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve $ref references in a JSON or YAML document and return the resolved document. By default only file references are followed; set internal=true to also replace #/ references. Use output_format to convert between json and yaml.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pluck",
		Description: "Take the value at a key path (e.g. keys=[\"definitions\", \"Pet\"]) out of a document and return it fully resolved, with internal references followed against the whole document.",
	}, handlePluck)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
