package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gauntlet/internal/app"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/rules"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleScoreTicker implements the score_ticker tool
func handleScoreTicker(application *app.App, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return textResult("Error: ticker parameter is required"), nil
		}

		result := application.Checklist.ScoreTicker(ctx, common.NewRunID(), ticker)
		if result == nil {
			logger.Error().Str("ticker", ticker).Msg("Scoring returned no result")
			return textResult(fmt.Sprintf("Scoring failed for %s", ticker)), nil
		}

		return textResult(formatTickerResult(result)), nil
	}
}

// handleGetFilingSections implements the get_filing_sections tool
func handleGetFilingSections(application *app.App, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || ticker == "" {
			return textResult("Error: ticker parameter is required"), nil
		}

		maxChars := request.GetInt("max_chars", 4000)
		sectionName := request.GetString("section", "")
		if sectionName != "" && !knownSection(sectionName) {
			return textResult(fmt.Sprintf("Unknown section %q: use business, risk_factors, mda, or legal", sectionName)), nil
		}

		filing, err := application.Filings.LatestAnnual(ctx, ticker)
		if err != nil {
			logger.Error().Err(err).Str("ticker", ticker).Msg("Filing fetch failed")
			return textResult(fmt.Sprintf("Filing fetch error: %v", err)), nil
		}
		if filing == nil || !filing.HasText() {
			return textResult(fmt.Sprintf("No annual filing found for %s", ticker)), nil
		}

		found := application.Sections.Extract(filing.Text)
		return textResult(formatSections(filing, found, sectionName, maxChars)), nil
	}
}

// handleListSegments implements the list_segments tool
func handleListSegments(application *app.App) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(formatSegmentList(application.Rules)), nil
	}
}

func knownSection(name string) bool {
	for _, known := range rules.SectionNames() {
		if name == known {
			return true
		}
	}
	return false
}
