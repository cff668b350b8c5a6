// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huangsam/talentview/internal/contract"
)

// NewMCPServer initializes and configures the Talentview MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.EvaluationClient, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Talentview Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		mgr:     mgr,
	}

	// --- 1. Tool: get_team_overview ---
	s.AddTool(mcp.NewTool("get_team_overview",
		mcp.WithDescription("List a manager's collaborators with their evaluation scores for a cycle."),
		mcp.WithString("cycle", mcp.Description("Evaluation cycle to inspect (e.g., '2025.1')."), mcp.Required()),
		mcp.WithString("search", mcp.Description("Filter collaborators by name or job title substring.")),
		mcp.WithString("status", mcp.Description("Filter by status bucket."), mcp.Enum("high", "medium", "low", "all")),
		mcp.WithString("band", mcp.Description("Filter by performance band."), mcp.Enum("high", "medium", "low", "all")),
		mcp.WithString("sort", mcp.Description("Sort order for the listing."), mcp.Enum("alphabetical", "highest_score", "lowest_score")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetTeamOverview)

	// --- 2. Tool: get_talent_matrix ---
	s.AddTool(mcp.NewTool("get_talent_matrix",
		mcp.WithDescription("Group collaborators into the 9-box performance/potential talent matrix."),
		mcp.WithString("cycle", mcp.Description("Evaluation cycle to inspect (e.g., '2025.1')."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Filter to a single matrix cell by its label (e.g., 'Estrela').")),
	), h.handleGetTalentMatrix)

	// --- 3. Tool: get_brutal_facts ---
	s.AddTool(mcp.NewTool("get_brutal_facts",
		mcp.WithDescription("Fetch team-wide aggregate metrics and the written team analysis for a cycle."),
		mcp.WithString("cycle", mcp.Description("Evaluation cycle to inspect (e.g., '2025.1')."), mcp.Required()),
	), h.handleGetBrutalFacts)

	// --- 4. Tool: get_performance_history ---
	s.AddTool(mcp.NewTool("get_performance_history",
		mcp.WithDescription("Fetch one subordinate's score history across cycles with the weighted score composition."),
		mcp.WithString("subordinate_id", mcp.Description("The subordinate's user id."), mcp.Required()),
	), h.handleGetPerformanceHistory)

	return s
}

// StartMCPServer starts the Talentview MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.EvaluationClient, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, client, mgr)
	return server.ServeStdio(s)
}
