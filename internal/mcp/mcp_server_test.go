package mcp_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pathworks/talentmap/internal/contract"
	mcp_internal "github.com/pathworks/talentmap/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) *contract.Config {
	t.Helper()
	dir := t.TempDir()

	bankPath := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(bankPath, []byte(`[
		{"id": 1, "domain": "Analytical", "careerClusters": ["stem"]},
		{"id": 2, "domain": "Creative", "careerClusters": ["arts"]}
	]`), 0o644))

	clustersPath := filepath.Join(dir, "clusters.json")
	require.NoError(t, os.WriteFile(clustersPath, []byte(`[
		{"id": "stem", "name": "STEM", "domains": ["Analytical"]},
		{"id": "arts", "name": "Arts", "domains": ["Creative"]}
	]`), 0o644))

	return &contract.Config{
		ItemBankPath: bankPath,
		ClustersPath: clustersPath,
		ResultLimit:  contract.DefaultClusterLimit,
	}
}

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := writeDataset(t)
	s := mcp_internal.NewMCPServer(baseCfg)

	ctx := context.Background()

	callTool := func(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
		t.Helper()
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("score_assessment missing answers", func(t *testing.T) {
		res := callTool(t, "score_assessment", map[string]any{})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "answers is required")
	})

	t.Run("score_assessment invalid answers JSON", func(t *testing.T) {
		res := callTool(t, "score_assessment", map[string]any{
			"answers": `{"first": 4}`,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "item ids must be integers")
	})

	t.Run("score_assessment returns the combined result", func(t *testing.T) {
		res := callTool(t, "score_assessment", map[string]any{
			"answers": `{"1": 5, "2": 2}`,
		})
		assert.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"domains"`)
		assert.Contains(t, text, `"clusters"`)
	})

	t.Run("rank_clusters honors the limit", func(t *testing.T) {
		res := callTool(t, "rank_clusters", map[string]any{
			"answers": `{"1": 5, "2": 2}`,
			"limit":   1.0,
		})
		assert.False(t, res.IsError)
		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, `"stem"`)
		assert.NotContains(t, text, `"arts"`)
	})

	t.Run("learning_style without a style map", func(t *testing.T) {
		res := callTool(t, "learning_style", map[string]any{
			"answers": `{"1": 5}`,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no style map")
	})
}
