package export

import (
	"bytes"
	"encoding/csv"

	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

var csvHeader = []string{
	"run_id", "ticker", "company", "segment", "metric", "score", "max", "manual", "reasoning",
}

// renderCSV flattens the run into one row per scored metric so the
// output loads straight into a spreadsheet or notebook.
func renderCSV(run *checklist.RunResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, result := range run.Results {
		for _, segment := range result.Segments {
			for _, m := range segment.Metrics {
				manual := "false"
				if m.Score.Manual {
					manual = "true"
				}
				row := []string{
					run.RunID,
					result.Ticker,
					result.Company,
					segment.Name,
					m.Name,
					trimFloat(m.Score.Value),
					trimFloat(m.Max),
					manual,
					m.Score.Reasoning,
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
