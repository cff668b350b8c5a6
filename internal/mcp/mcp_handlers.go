package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.EvaluationClient
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetTeamOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Cycle = request.GetString("cycle", cfg.Cycle)
	cfg.Search = request.GetString("search", "")
	if s := request.GetString("status", ""); s != "" {
		cfg.StatusFilter = s
	}
	if b := request.GetString("band", ""); b != "" {
		cfg.Band = schema.PerformanceBand(b)
	}
	if s := request.GetString("sort", ""); s != "" {
		cfg.Sort = schema.SortOrder(s)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	results, err := core.GetTeamOverviewResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("team overview failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTalentMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Cycle = request.GetString("cycle", cfg.Cycle)
	cfg.Category = request.GetString("category", "")

	matrix, err := core.GetTalentMatrixResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("talent matrix failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(matrix, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBrutalFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Cycle = request.GetString("cycle", cfg.Cycle)

	output, err := core.GetBrutalFactsResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("brutal facts failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(map[string]any{
		"metrics":  output.Metrics,
		"analysis": output.Analysis,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPerformanceHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SubordinateID = request.GetString("subordinate_id", "")

	output, err := core.GetPerformanceHistoryResults(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("performance history failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(map[string]any{
		"history":      output.History,
		"compositions": output.Compositions,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
