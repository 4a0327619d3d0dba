package export

import (
	"fmt"
	"strings"

	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

// renderMarkdown builds the human-readable run summary: one section
// per ticker with a segment overview table, then a detail table per
// segment carrying every metric's reasoning.
func renderMarkdown(run *checklist.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Gauntlet Checklist Report\n\n")
	fmt.Fprintf(&b, "Run `%s` scored %d companies on %s.\n\n",
		run.RunID, len(run.Results), run.StartedAt.Format("2006-01-02 15:04 MST"))

	for _, result := range run.Results {
		title := result.Ticker
		if result.Company != "" {
			title = fmt.Sprintf("%s — %s", result.Ticker, result.Company)
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		fmt.Fprintf(&b, "**Total: %s**\n\n", trimFloat(result.Total()))

		if result.Mission != "" {
			fmt.Fprintf(&b, "> %s\n\n", result.Mission)
		}

		b.WriteString("| Segment | Score | Max |\n")
		b.WriteString("| --- | ---: | ---: |\n")
		for _, segment := range result.Segments {
			fmt.Fprintf(&b, "| %s | %s | %d |\n",
				segment.Name, trimFloat(segment.Total()), segment.Max)
		}
		b.WriteString("\n")

		for _, segment := range result.Segments {
			fmt.Fprintf(&b, "### %s\n\n", segment.Name)
			b.WriteString("| Metric | Score | Max | Reasoning |\n")
			b.WriteString("| --- | ---: | ---: | --- |\n")
			for _, m := range segment.Metrics {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
					m.Name, scoreCell(m), trimFloat(m.Max), escapeCell(m.Score.Reasoning))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// escapeCell keeps free-form reasoning text from breaking table rows.
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}
