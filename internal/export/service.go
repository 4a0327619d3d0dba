// Package export renders checklist run results to report files. One
// file per configured format per run: a flat CSV of every scored
// metric, a markdown summary, an HTML page rendered from the markdown,
// and a PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

// Supported format names as they appear in configuration.
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
)

// Service writes run reports to the export directory.
type Service struct {
	dir     string
	formats []string
	logger  arbor.ILogger
}

// NewService creates an export service from configuration.
func NewService(cfg common.ExportConfig, logger arbor.ILogger) *Service {
	return &Service{
		dir:     cfg.Dir,
		formats: cfg.Formats,
		logger:  logger,
	}
}

// Write renders the run in every configured format and returns the
// paths written. Unknown formats are skipped with a warning so one bad
// config entry cannot lose the rest of the report.
func (s *Service) Write(run *checklist.RunResult) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir %s: %w", s.dir, err)
	}

	var paths []string
	for _, format := range s.formats {
		var (
			payload []byte
			ext     string
			err     error
		)

		switch strings.ToLower(strings.TrimSpace(format)) {
		case FormatCSV:
			payload, err = renderCSV(run)
			ext = "csv"
		case FormatMarkdown:
			payload = []byte(renderMarkdown(run))
			ext = "md"
		case FormatHTML:
			payload, err = renderHTML(run)
			ext = "html"
		case FormatPDF:
			payload, err = renderPDF(run)
			ext = "pdf"
		default:
			s.logger.Warn().
				Str("format", format).
				Msg("Unknown export format, skipping")
			continue
		}
		if err != nil {
			return paths, fmt.Errorf("failed to render %s report: %w", format, err)
		}

		path := filepath.Join(s.dir, fmt.Sprintf("gauntlet_%s.%s", run.RunID, ext))
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}

		s.logger.Info().
			Str("path", path).
			Int("bytes", len(payload)).
			Msg("Report written")
		paths = append(paths, path)
	}
	return paths, nil
}

// scoreCell formats a metric score for tabular output. Manual metrics
// render as a marker instead of a number.
func scoreCell(m checklist.MetricResult) string {
	if m.Score.Manual {
		return "MANUAL"
	}
	return trimFloat(m.Score.Value)
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
