package checklist

import (
	"time"

	"github.com/phuslu/log"

	"github.com/ternarybob/gauntlet/internal/services/scoring"
)

// AuditLog appends one JSON line per scored metric so every number in a
// report can be traced back to its reasoning. A nil AuditLog discards
// events.
type AuditLog struct {
	logger log.Logger
	writer *log.FileWriter
}

// NewAuditLog opens (or creates) the audit file at path.
func NewAuditLog(path string) *AuditLog {
	writer := &log.FileWriter{
		Filename:     path,
		EnsureFolder: true,
	}
	return &AuditLog{
		logger: log.Logger{
			Level:      log.InfoLevel,
			TimeField:  "ts",
			TimeFormat: time.RFC3339,
			Writer:     writer,
		},
		writer: writer,
	}
}

// Score records one metric outcome.
func (a *AuditLog) Score(runID, ticker, segment, metric string, score scoring.Score, max float64) {
	if a == nil {
		return
	}
	a.logger.Info().
		Str("run_id", runID).
		Str("ticker", ticker).
		Str("segment", segment).
		Str("metric", metric).
		Float64("score", score.Value).
		Float64("max", max).
		Bool("manual", score.Manual).
		Str("reasoning", score.Reasoning).
		Msg("score")
}

// Issue records a degraded-data event: a fetch or analysis that fell
// back to a neutral score.
func (a *AuditLog) Issue(runID, ticker, detail string) {
	if a == nil {
		return
	}
	a.logger.Warn().
		Str("run_id", runID).
		Str("ticker", ticker).
		Str("detail", detail).
		Msg("data issue")
}

// Close flushes and closes the underlying file.
func (a *AuditLog) Close() error {
	if a == nil || a.writer == nil {
		return nil
	}
	return a.writer.Close()
}
