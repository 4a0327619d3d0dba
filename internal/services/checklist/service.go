package checklist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
	"github.com/ternarybob/gauntlet/internal/services/filings"
	"github.com/ternarybob/gauntlet/internal/services/financials"
	"github.com/ternarybob/gauntlet/internal/services/scoring"
	"github.com/ternarybob/gauntlet/internal/services/sections"
)

// Service runs the checklist end to end for a watchlist of tickers.
type Service struct {
	filings    *filings.Service
	financials *financials.Service
	sections   *sections.Extractor
	analyzer   *evidence.Analyzer
	scorer     *scoring.Scorer
	rules      *rules.Rules
	audit      *AuditLog
	logger     arbor.ILogger

	// Provider symbol settings for price history lookups.
	exchange  string
	benchmark string
}

// NewService wires the checklist orchestrator.
func NewService(
	filingSvc *filings.Service,
	financialSvc *financials.Service,
	extractor *sections.Extractor,
	analyzer *evidence.Analyzer,
	scorer *scoring.Scorer,
	ruleSet *rules.Rules,
	audit *AuditLog,
	exchange string,
	benchmark string,
	logger arbor.ILogger,
) *Service {
	return &Service{
		filings:    filingSvc,
		financials: financialSvc,
		sections:   extractor,
		analyzer:   analyzer,
		scorer:     scorer,
		rules:      ruleSet,
		audit:      audit,
		logger:     logger,
		exchange:   exchange,
		benchmark:  benchmark,
	}
}

// Run scores every ticker in order and returns the aggregated results.
// Individual ticker failures are contained; the run always completes.
func (s *Service) Run(ctx context.Context, tickers []string) (*RunResult, error) {
	run := &RunResult{
		RunID:     common.NewRunID(),
		StartedAt: time.Now(),
	}

	s.logger.Info().
		Str("run_id", run.RunID).
		Int("tickers", len(tickers)).
		Msg("Starting checklist run")

	for _, ticker := range tickers {
		select {
		case <-ctx.Done():
			run.Duration = time.Since(run.StartedAt)
			return run, ctx.Err()
		default:
		}
		run.Results = append(run.Results, s.ScoreTicker(ctx, run.RunID, ticker))
	}

	run.Duration = time.Since(run.StartedAt)
	s.logger.Info().
		Str("run_id", run.RunID).
		Str("duration", run.Duration.Round(time.Millisecond).String()).
		Int("results", len(run.Results)).
		Msg("Checklist run complete")
	return run, nil
}

// ScoreTicker runs every segment for one ticker. Segments are isolated:
// a panic or missing input empties that segment only.
func (s *Service) ScoreTicker(ctx context.Context, runID, ticker string) *TickerResult {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	result := &TickerResult{
		Ticker:   ticker,
		RunID:    runID,
		ScoredAt: time.Now(),
	}

	in := s.gather(ctx, runID, ticker)
	if in.profile != nil {
		result.Company = in.profile.Name
	}
	result.Mission = s.scorer.MissionStatement(in.profile)

	for _, name := range segmentOrder {
		segment := SegmentResult{Name: name, Max: s.rules.SegmentMax[name]}
		segment.Metrics = s.runSegment(name, in)
		for _, m := range segment.Metrics {
			s.audit.Score(runID, ticker, name, m.Name, m.Score, m.Max)
		}
		result.Segments = append(result.Segments, segment)
	}

	s.logger.Info().
		Str("ticker", ticker).
		Float64("total", result.Total()).
		Msg("Ticker scored")
	return result
}

// inputs collects everything a ticker's segments consume. Fields stay
// nil or empty when a fetch failed; scoring treats that as missing data.
type inputs struct {
	ticker     string
	filing     *models.Filing
	filingText string // lowercased; the rule banks require it
	sections   map[string]string
	riskText   string
	fin        *models.Financials
	profile    *models.Profile
	earnings   []models.EarningsEvent
	prices     []models.PriceBar
	benchmark  []models.PriceBar
}

func (s *Service) gather(ctx context.Context, runID, ticker string) *inputs {
	in := &inputs{ticker: ticker, sections: map[string]string{}}

	filing, err := s.filings.LatestAnnual(ctx, ticker)
	if err != nil {
		s.warn(runID, ticker, "filing fetch failed: "+err.Error())
	} else if filing != nil && filing.HasText() {
		in.filing = filing
		// The analyzers and rule banks contract on lowercased text.
		in.filingText = strings.ToLower(filing.Text)
		in.sections = s.sections.Extract(in.filingText)
		in.riskText = s.sections.RiskSection(in.filingText)
	}

	if in.fin, err = s.financials.Financials(ctx, ticker); err != nil {
		s.warn(runID, ticker, "financial statements fetch failed: "+err.Error())
	}
	if in.profile, err = s.financials.Profile(ctx, ticker); err != nil {
		s.warn(runID, ticker, "profile fetch failed: "+err.Error())
	}
	if in.earnings, err = s.financials.Earnings(ctx, ticker); err != nil {
		s.warn(runID, ticker, "earnings history fetch failed: "+err.Error())
	}

	symbol := common.ParseTicker(ticker).ProviderSymbol(s.exchange)
	if in.prices, err = s.financials.PerformancePrices(ctx, symbol); err != nil {
		s.warn(runID, ticker, "price history fetch failed: "+err.Error())
	}
	if in.benchmark, err = s.financials.PerformancePrices(ctx, s.benchmark); err != nil {
		s.warn(runID, ticker, "benchmark history fetch failed: "+err.Error())
	}

	return in
}

func (s *Service) warn(runID, ticker, detail string) {
	s.logger.Warn().
		Str("ticker", ticker).
		Str("detail", detail).
		Msg("Degraded input, scoring with neutral fallbacks")
	s.audit.Issue(runID, ticker, detail)
}

// runSegment dispatches and contains panics: a segment that blows up
// yields no metrics instead of sinking the ticker.
func (s *Service) runSegment(name string, in *inputs) (metrics []MetricResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("ticker", in.ticker).
				Str("segment", name).
				Str("panic", fmt.Sprintf("%v", r)).
				Msg("Segment panicked, returning empty result")
			metrics = nil
		}
	}()

	switch name {
	case rules.SegmentFinancials:
		return s.financialMetrics(in)
	case rules.SegmentMoat:
		return s.moatMetrics()
	case rules.SegmentPotential:
		return s.potentialMetrics(in)
	case rules.SegmentCustomers:
		return s.customerMetrics(in)
	case rules.SegmentSpecific:
		return s.specificMetrics(in)
	case rules.SegmentManagement:
		return s.managementMetrics(in)
	case rules.SegmentStock:
		return s.stockMetrics(in)
	case rules.SegmentPenalties:
		return s.penaltyMetrics(in)
	default:
		return nil
	}
}
