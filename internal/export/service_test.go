package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/checklist"
	"github.com/ternarybob/gauntlet/internal/services/scoring"
)

func sampleRun() *checklist.RunResult {
	return &checklist.RunResult{
		RunID:     "run42",
		StartedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		Results: []*checklist.TickerResult{
			{
				Ticker:  "ACME",
				Company: "Acme Infrastructure",
				RunID:   "run42",
				Mission: "Build boring plumbing that never breaks.",
				Segments: []checklist.SegmentResult{
					{
						Name: rules.SegmentFinancials,
						Max:  14,
						Metrics: []checklist.MetricResult{
							{Name: checklist.MetricResilience, Max: 5, Score: scoring.Score{Value: 5, Reasoning: "Cash exceeds debt; retained earnings growing"}},
							{Name: checklist.MetricGrossMargin, Max: 3, Score: scoring.Score{Value: 2, Reasoning: "Gross margin 60%"}},
						},
					},
					{
						Name: rules.SegmentMoat,
						Max:  20,
						Metrics: []checklist.MetricResult{
							{Name: "Moat Assessment", Score: scoring.Score{Manual: true, Reasoning: "Requires manual evaluation | with a pipe"}},
						},
					},
					{
						Name: rules.SegmentPenalties,
						Metrics: []checklist.MetricResult{
							{Name: checklist.MetricExtremeDilution, Score: scoring.Score{Value: -2, Reasoning: "7.5% annual issuance growth"}},
							{Name: checklist.MetricGauntletScore, Score: scoring.Score{Value: -2, Reasoning: "Sum of all penalty scores"}},
						},
					},
				},
			},
		},
	}
}

func newTestService(t *testing.T, formats ...string) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewService(common.ExportConfig{Dir: dir, Formats: formats}, common.GetLogger())
	return svc, dir
}

func TestWriteAllFormats(t *testing.T) {
	svc, dir := newTestService(t, FormatCSV, FormatMarkdown, FormatHTML, FormatPDF)

	paths, err := svc.Write(sampleRun())
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for _, ext := range []string{"csv", "md", "html", "pdf"} {
		path := filepath.Join(dir, "gauntlet_run42."+ext)
		assert.Contains(t, paths, path)
		info, err := os.Stat(path)
		require.NoError(t, err, ext)
		assert.Positive(t, info.Size(), ext)
	}
}

func TestWriteSkipsUnknownFormat(t *testing.T) {
	svc, _ := newTestService(t, "docx", FormatCSV)

	paths, err := svc.Write(sampleRun())
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], ".csv"))
}

func TestCSVOneRowPerMetric(t *testing.T) {
	payload, err := renderCSV(sampleRun())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 6, "header plus five metric rows")
	assert.Equal(t, csvHeader, records[0])

	resilience := records[1]
	assert.Equal(t, "run42", resilience[0])
	assert.Equal(t, "ACME", resilience[1])
	assert.Equal(t, rules.SegmentFinancials, resilience[3])
	assert.Equal(t, checklist.MetricResilience, resilience[4])
	assert.Equal(t, "5", resilience[5])

	moat := records[3]
	assert.Equal(t, "true", moat[7])
}

func TestMarkdownReport(t *testing.T) {
	md := renderMarkdown(sampleRun())

	assert.Contains(t, md, "# Gauntlet Checklist Report")
	assert.Contains(t, md, "## ACME — Acme Infrastructure")
	assert.Contains(t, md, "**Total: 5**", "7 automated points minus 2 penalty, manual metrics and the rollup excluded")
	assert.Contains(t, md, "> Build boring plumbing that never breaks.")
	assert.Contains(t, md, "| Resilience Score | 5 | 5 |")
	assert.Contains(t, md, "| Moat Assessment | MANUAL |")
	assert.Contains(t, md, "\\|", "pipes in reasoning are escaped")
}

func TestHTMLReport(t *testing.T) {
	payload, err := renderHTML(sampleRun())
	require.NoError(t, err)

	html := string(payload)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Acme Infrastructure")
	assert.Contains(t, html, "Resilience Score")
}

func TestPDFReport(t *testing.T) {
	payload, err := renderPDF(sampleRun())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")), "output must be a PDF document")
}
