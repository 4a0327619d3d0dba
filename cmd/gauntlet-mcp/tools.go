package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createScoreTickerTool returns the score_ticker tool definition
func createScoreTickerTool() mcp.Tool {
	return mcp.NewTool("score_ticker",
		mcp.WithDescription("Run the full investment checklist for a public company and return every segment's scores with reasoning"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker (e.g. AAPL, or exchange-qualified NASDAQ:AAPL)"),
		),
	)
}

// createGetFilingSectionsTool returns the get_filing_sections tool definition
func createGetFilingSectionsTool() mcp.Tool {
	return mcp.NewTool("get_filing_sections",
		mcp.WithDescription("Fetch a company's latest annual filing (10-K, 20-F fallback) and return its extracted sections"),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker"),
		),
		mcp.WithString("section",
			mcp.Description("Single section to return: business, risk_factors, mda, legal (default: all)"),
		),
		mcp.WithNumber("max_chars",
			mcp.Description("Truncate each section to this many characters (default: 4000)"),
		),
	)
}

// createListSegmentsTool returns the list_segments tool definition
func createListSegmentsTool() mcp.Tool {
	return mcp.NewTool("list_segments",
		mcp.WithDescription("List the checklist segments and their maximum scores"),
	)
}
