package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

// formatTickerResult formats a full checklist result as markdown
func formatTickerResult(result *checklist.TickerResult) string {
	var sb strings.Builder

	title := result.Ticker
	if result.Company != "" {
		title = fmt.Sprintf("%s (%s)", result.Ticker, result.Company)
	}
	sb.WriteString(fmt.Sprintf("# Checklist: %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**Total:** %.1f\n\n", result.Total()))

	if result.Mission != "" {
		sb.WriteString(fmt.Sprintf("**Mission:** %s\n\n", result.Mission))
	}

	for _, segment := range result.Segments {
		sb.WriteString(fmt.Sprintf("## %s (%.1f / %d)\n\n", segment.Name, segment.Total(), segment.Max))
		for _, m := range segment.Metrics {
			score := fmt.Sprintf("%.1f", m.Score.Value)
			if m.Score.Manual {
				score = "MANUAL"
			}
			sb.WriteString(fmt.Sprintf("- **%s:** %s", m.Name, score))
			if m.Score.Reasoning != "" {
				sb.WriteString(fmt.Sprintf(" — %s", m.Score.Reasoning))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatSections formats extracted filing sections as markdown
func formatSections(filing *models.Filing, found map[string]string, only string, maxChars int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s %s (%s)\n\n", filing.Ticker, filing.FormType, filing.FilingDate))
	if filing.URL != "" {
		sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", filing.URL))
	}

	names := rules.SectionNames()
	if only != "" {
		names = []string{only}
	}

	wrote := 0
	for _, name := range names {
		section, ok := found[name]
		if !ok {
			continue
		}
		if len(section) > maxChars {
			section = section[:maxChars] + "..."
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", name, section))
		wrote++
	}
	if wrote == 0 {
		sb.WriteString("No matching sections could be located in the filing.\n")
	}

	return sb.String()
}

// formatSegmentList formats the segment catalog as markdown
func formatSegmentList(r *rules.Rules) string {
	var sb strings.Builder
	sb.WriteString("# Checklist Segments\n\n")
	sb.WriteString("| Segment | Max Score |\n| --- | ---: |\n")
	for _, name := range []string{
		rules.SegmentFinancials,
		rules.SegmentMoat,
		rules.SegmentPotential,
		rules.SegmentCustomers,
		rules.SegmentSpecific,
		rules.SegmentManagement,
		rules.SegmentStock,
		rules.SegmentPenalties,
	} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", name, r.SegmentMax[name]))
	}
	sb.WriteString("\nPenalties subtract from the total; manual metrics require analyst judgement and carry no automated score.\n")
	return sb.String()
}
