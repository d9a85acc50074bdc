package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harvestcx/harvestcx/internal/config"
	"github.com/harvestcx/harvestcx/internal/contextdump"
	"github.com/harvestcx/harvestcx/internal/ruleset"
	"github.com/harvestcx/harvestcx/internal/tokenbudget"
)

// ReadContextInput mirrors contextdump.Request's caller-facing fields.
type ReadContextInput struct {
	ProjectRoot       string   `json:"project_root" jsonschema:"Absolute or relative path to the project root to dump"`
	Targets           []string `json:"targets,omitempty" jsonschema:"Specific files or directories to include, relative to project_root. Omit to dump the whole root."`
	OverrideRulesFile string   `json:"override_rules_file,omitempty" jsonschema:"Path to a rule file that replaces all .gitignore/.contextfiles discovery for this call"`
	ListOnly          bool     `json:"list_only,omitempty" jsonschema:"Return a path listing instead of file contents"`
	SizeLimit         string   `json:"size_limit,omitempty" jsonschema:"Aggregate size budget, e.g. '100MB'. Defaults to 100MiB."`
}

func registerReadContextTool(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name: "read_context",
		Description: `Walk a project tree, apply gitignore-style layered filtering (built-in
defaults, .gitignore, .contextfiles, optional override rules), and return the
concatenated contents of every surviving text file as a single string.

Use this to pull an LLM-ready context dump of a repository or a subset of it
without shelling out to the harvestcx CLI.`,
	}, handleReadContext)
}

func handleReadContext(ctx context.Context, _ *mcp.CallToolRequest, input ReadContextInput) (*mcp.CallToolResult, any, error) {
	req, err := toRequest(input, false)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	result, err := contextdump.ReadContext(ctx, req)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	return textResult(result.Text), nil, nil
}

// DumpStatsInput is read_context's input shape plus nothing extra: stats are
// derived from the same dump, just reported instead of returned in full.
type DumpStatsInput = ReadContextInput

func registerDumpStatsTool(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name: "dump_stats",
		Description: `Run the same walk read_context would, but report aggregate statistics
(byte size and an estimated cl100k_base token count) instead of returning the
full text. Use this to check whether a dump will fit a context window before
pulling the whole thing.`,
	}, handleDumpStats)
}

func handleDumpStats(ctx context.Context, _ *mcp.CallToolRequest, input DumpStatsInput) (*mcp.CallToolResult, any, error) {
	req, err := toRequest(input, false)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	result, err := contextdump.ReadContext(ctx, req)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	estimator, err := tokenbudget.NewEstimator()
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	tokens := estimator.Count(result.Text)

	return textResult(fmt.Sprintf("bytes=%d tokens(%s)=%d", len(result.Text), tokenbudget.EncodingName, tokens)), nil, nil
}

func toRequest(input ReadContextInput, debugExplain bool) (contextdump.Request, error) {
	limit, err := config.ResolveSizeLimit(input.SizeLimit)
	if err != nil {
		return contextdump.Request{}, err
	}

	var overrideRules []string
	if input.OverrideRulesFile != "" {
		lines, err := ruleset.LoadRuleFile(input.OverrideRulesFile)
		if err != nil {
			return contextdump.Request{}, err
		}
		overrideRules = lines
	}

	return contextdump.Request{
		ProjectRoot:    input.ProjectRoot,
		Targets:        input.Targets,
		OverrideRules:  overrideRules,
		ListOnly:       input.ListOnly,
		SizeLimitBytes: limit,
		DebugExplain:   debugExplain,
		Cancelled:      func() bool { return false },
	}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + message},
		},
		IsError: true,
	}
}
