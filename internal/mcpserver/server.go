// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasmerge merge engine as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strconv"

	"github.com/erraggy/oasmerge"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasmerge MCP server. Merges several OpenAPI 3.x documents into one.

Configuration: defaults are read from OASMERGE_* environment variables set in your MCP client config.

Key settings:
- OASMERGE_MAX_SPECS (default: 50) maximum number of specs in one merge call
- OASMERGE_MAX_SCHEMA_DEPTH (default: 0, unlimited) maximum schema nesting; deeper specs fail to merge
- OASMERGE_DEFAULT_FORMAT (yaml or json) output format when the call does not set one
- OASMERGE_MERGED_TITLE, OASMERGE_MERGED_VERSION info used when the specs' info objects differ
- OASMERGE_MAX_INLINE_SIZE (default: 10 MiB) maximum size of inline spec content

Merging: earlier specs win. A spec declaring a path already declared by an earlier spec is excluded and reported in problems. Component names, tags and operationIds that collide with a different definition are renamed with a numeric suffix and every reference is rewritten.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasmerge", Version: oasmerge.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge multiple OpenAPI 3.x documents into a single document. Specs are given in priority order via the specs array, each as a file path or inline content, optionally with a context_root that is prepended to its paths when every server URL ends with it. A spec that declares a path owned by an earlier spec is excluded and listed in problems. Colliding component names, tags and operationIds are deduplicated when structurally equal and renamed otherwise; renames lists every change. Use output to write to a file instead of returning the document inline.",
	}, handleMerge)
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

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
