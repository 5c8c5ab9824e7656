// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pathworks/talentmap/internal/contract"
)

// NewMCPServer initializes and configures the Talentmap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Talentmap Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: score_assessment ---
	s.AddTool(mcp.NewTool("score_assessment",
		mcp.WithDescription("Score a full assessment: aptitude domains, ranked career clusters and learning style."),
		mcp.WithString("answers", mcp.Description("Inline answer set as a JSON object of item id to answer value."), mcp.Required()),
		mcp.WithString("strategy", mcp.Description("Cluster scoring strategy (items, domains). Defaults to the server configuration."), mcp.Enum("items", "domains")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked clusters returned.")),
	), h.handleScoreAssessment)

	// --- 2. Tool: rank_clusters ---
	s.AddTool(mcp.NewTool("rank_clusters",
		mcp.WithDescription("Rank career clusters by fit for an answer set."),
		mcp.WithString("answers", mcp.Description("Inline answer set as a JSON object of item id to answer value."), mcp.Required()),
		mcp.WithString("strategy", mcp.Description("Cluster scoring strategy (items, domains)."), mcp.Enum("items", "domains")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleRankClusters)

	// --- 3. Tool: learning_style ---
	s.AddTool(mcp.NewTool("learning_style",
		mcp.WithDescription("Classify the dominant learning-style channel for an answer set."),
		mcp.WithString("answers", mcp.Description("Inline answer set as a JSON object of item id to answer value."), mcp.Required()),
	), h.handleLearningStyle)

	return s
}

// StartMCPServer starts the Talentmap MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
