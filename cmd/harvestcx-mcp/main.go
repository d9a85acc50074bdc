// Command harvestcx-mcp exposes harvestcx's context-dump engine as an MCP
// tool server over stdio, for use by MCP-aware LLM clients that want to pull
// a filtered project context directly rather than shelling out to the CLI.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestcx/harvestcx/internal/buildinfo"
)

// mcpLog logs to stderr; stdout is reserved for MCP JSON-RPC framing.
var mcpLog = log.New(os.Stderr, "[harvestcx-mcp] ", log.Ltime)

func main() {
	srv := mcp.NewServer(
		&mcp.Implementation{
			Name:    "harvestcx",
			Version: buildinfo.Version,
		},
		nil,
	)

	registerReadContextTool(srv)
	registerDumpStatsTool(srv)

	mcpLog.Printf("harvestcx MCP server ready, listening on stdio")
	if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		mcpLog.Fatalf("server error: %v", err)
	}
}
