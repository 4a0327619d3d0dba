// Package app wires the application components: rules, storage,
// providers, and the checklist pipeline.
package app

import (
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/edgar"
	"github.com/ternarybob/gauntlet/internal/export"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/ternarybob/gauntlet/internal/marketdata"
	"github.com/ternarybob/gauntlet/internal/rules"
	"github.com/ternarybob/gauntlet/internal/services/cache"
	"github.com/ternarybob/gauntlet/internal/services/checklist"
	"github.com/ternarybob/gauntlet/internal/services/evidence"
	"github.com/ternarybob/gauntlet/internal/services/filings"
	"github.com/ternarybob/gauntlet/internal/services/financials"
	"github.com/ternarybob/gauntlet/internal/services/scoring"
	"github.com/ternarybob/gauntlet/internal/services/sections"
	"github.com/ternarybob/gauntlet/internal/storage/badger"
)

// App holds the wired application components.
type App struct {
	Config *common.Config
	Logger arbor.ILogger
	Rules  *rules.Rules

	StorageManager interfaces.StorageManager
	Audit          *checklist.AuditLog

	Filings    *filings.Service
	Financials *financials.Service
	Sections   *sections.Extractor
	Analyzer   *evidence.Analyzer
	Checklist  *checklist.Service
	Export     *export.Service
}

// New wires the application from configuration.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	ruleSet, err := loadRules(config, logger)
	if err != nil {
		return nil, err
	}

	storageManager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cacheSvc := cache.NewService(storageManager.CacheStorage(), config.CacheTTL(), logger)

	edgarClient := edgar.NewClient(config.Edgar.UserAgent,
		edgar.WithLogger(logger),
		edgar.WithRateLimit(config.Edgar.RateLimit),
		edgar.WithHTTPClient(&http.Client{Timeout: config.Edgar.RequestTimeout}),
	)
	marketClient := marketdata.NewClient(config.MarketData.APIKey,
		marketdata.WithLogger(logger),
		marketdata.WithExchange(config.MarketData.Exchange),
		marketdata.WithRateLimit(config.MarketData.RateLimit),
		marketdata.WithHTTPClient(&http.Client{Timeout: config.MarketData.RequestTimeout}),
	)

	var classifier evidence.SentenceClassifier
	if config.Analysis.NLPEnabled {
		classifier = evidence.NewProseClassifier(ruleSet, logger)
	} else {
		classifier = evidence.NewRegexClassifier(ruleSet)
	}

	var audit *checklist.AuditLog
	if config.Logging.Audit != "" {
		audit = checklist.NewAuditLog(config.Logging.Audit)
	}

	filingSvc := filings.NewService(edgarClient, cacheSvc, logger)
	financialSvc := financials.NewService(marketClient, cacheSvc, logger)
	extractor := sections.NewExtractor(ruleSet, logger)
	analyzer := evidence.NewAnalyzer(ruleSet, classifier, logger)

	checklistSvc := checklist.NewService(
		filingSvc,
		financialSvc,
		extractor,
		analyzer,
		scoring.NewScorer(ruleSet),
		ruleSet,
		audit,
		config.MarketData.Exchange,
		config.MarketData.Benchmark,
		logger,
	)

	logger.Info().
		Str("environment", config.Environment).
		Bool("nlp_enabled", config.Analysis.NLPEnabled).
		Str("exchange", config.MarketData.Exchange).
		Str("benchmark", config.MarketData.Benchmark).
		Msg("Application initialized")

	return &App{
		Config:         config,
		Logger:         logger,
		Rules:          ruleSet,
		StorageManager: storageManager,
		Audit:          audit,
		Filings:        filingSvc,
		Financials:     financialSvc,
		Sections:       extractor,
		Analyzer:       analyzer,
		Checklist:      checklistSvc,
		Export:         export.NewService(config.Export, logger),
	}, nil
}

// loadRules builds the rule set: defaults, then the optional YAML
// overrides file, then the analysis tuning from config.
func loadRules(config *common.Config, logger arbor.ILogger) (*rules.Rules, error) {
	ruleSet := rules.Default()

	if config.Rules.Path != "" {
		overrides, err := rules.LoadOverrides(config.Rules.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule overrides from %s: %w", config.Rules.Path, err)
		}
		ruleSet.Apply(overrides)
		logger.Info().
			Str("path", config.Rules.Path).
			Msg("Rule overrides applied")
	}

	if config.Analysis.CandidateLimit > 0 {
		ruleSet.Classifier.MaxCandidates = config.Analysis.CandidateLimit
	}
	if config.Analysis.ContextWindow > 0 {
		ruleSet.Classifier.ContextLength = config.Analysis.ContextWindow
	}
	return ruleSet, nil
}

// Close releases the audit log and storage.
func (a *App) Close() error {
	if err := a.Audit.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to close audit log")
	}
	if a.StorageManager != nil {
		return a.StorageManager.Close()
	}
	return nil
}
