package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pathworks/talentmap/core"
	"github.com/pathworks/talentmap/core/algo"
	"github.com/pathworks/talentmap/internal/contract"
	"github.com/pathworks/talentmap/internal/dataset"
	"github.com/pathworks/talentmap/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// prepare clones the base config with per-request overrides and loads the
// dataset with the inline answer set. The item bank, cluster definitions
// and style map stay server-side; only answers travel over the protocol.
func (h *toolHandler) prepare(request mcp.CallToolRequest) (*dataset.Dataset, *contract.Config, error) {
	cfg := h.baseCfg.Clone()
	cfg.ResultLimit = contract.DefaultMCPLimit
	if s := request.GetString("strategy", ""); s != "" {
		cfg.Strategy = schema.ClusterStrategy(s)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	raw := request.GetString("answers", "")
	if raw == "" {
		return nil, nil, errors.New("answers is required")
	}
	answers, err := schema.ParseAnswerSet([]byte(raw))
	if err != nil {
		return nil, nil, err
	}

	ds, err := dataset.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	ds.Answers = answers
	return ds, cfg, nil
}

func (h *toolHandler) handleScoreAssessment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, cfg, err := h.prepare(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}

	res, err := core.BuildResult(ds, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankClusters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, cfg, err := h.prepare(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}

	res, err := core.BuildResult(ds, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(res.Clusters, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLearningStyle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, _, err := h.prepare(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid scoring parameters: %v", err)), nil
	}
	if ds.StyleMap == nil {
		return mcp.NewToolResultError("no style map is configured on this server"), nil
	}

	style := algo.ClassifyStyle(ds.StyleMap, ds.Answers)
	jsonData, _ := json.MarshalIndent(style, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
