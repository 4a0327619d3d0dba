// Package financials provides cache-through retrieval of financial
// statements, company profiles, earnings history, and price series.
package financials

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/services/cache"
)

// PerformanceYears is the lookback window for relative-performance
// price series.
const PerformanceYears = 5

// Service wraps a market data provider with the TTL cache. Each data kind
// lives in its own namespace so a purge of one does not cold-start the
// others.
type Service struct {
	provider interfaces.MarketDataProvider
	cache    *cache.Service
	logger   arbor.ILogger
}

// NewService creates a new financial data service.
func NewService(provider interfaces.MarketDataProvider, cacheSvc *cache.Service, logger arbor.ILogger) *Service {
	return &Service{
		provider: provider,
		cache:    cacheSvc,
		logger:   logger,
	}
}

// Financials returns the statement history for a ticker, newest rows first.
func (s *Service) Financials(ctx context.Context, ticker string) (*models.Financials, error) {
	key := common.ParseTicker(ticker).CacheKey()

	var cached models.Financials
	if s.cache.Lookup(ctx, interfaces.NamespaceFinancials, key, &cached) {
		return &cached, nil
	}

	fin, err := s.provider.Financials(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch financials for %s: %w", ticker, err)
	}

	s.logger.Debug().
		Str("ticker", ticker).
		Int("annual_income_rows", len(fin.AnnualIncome)).
		Int("annual_balance_rows", len(fin.AnnualBalance)).
		Msg("Fetched financial statements")

	s.cache.Store(ctx, interfaces.NamespaceFinancials, key, fin)
	return fin, nil
}

// Profile returns the company profile for a ticker.
func (s *Service) Profile(ctx context.Context, ticker string) (*models.Profile, error) {
	key := common.ParseTicker(ticker).CacheKey()

	var cached models.Profile
	if s.cache.Lookup(ctx, interfaces.NamespaceProfile, key, &cached) {
		return &cached, nil
	}

	profile, err := s.provider.Profile(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", ticker, err)
	}

	s.cache.Store(ctx, interfaces.NamespaceProfile, key, profile)
	return profile, nil
}

// Earnings returns the reported earnings history, newest first.
func (s *Service) Earnings(ctx context.Context, ticker string) ([]models.EarningsEvent, error) {
	key := common.ParseTicker(ticker).CacheKey()

	var cached []models.EarningsEvent
	if s.cache.Lookup(ctx, interfaces.NamespaceEarnings, key, &cached) {
		return cached, nil
	}

	events, err := s.provider.Earnings(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch earnings for %s: %w", ticker, err)
	}

	s.cache.Store(ctx, interfaces.NamespaceEarnings, key, events)
	return events, nil
}

// PerformancePrices returns the daily price series covering the relative
// performance window for a provider symbol (a ticker's provider form or a
// benchmark index symbol). Cached under symbol and period together so
// different windows never collide.
func (s *Service) PerformancePrices(ctx context.Context, symbol string) ([]models.PriceBar, error) {
	key := fmt.Sprintf("%s_%dy", strings.ToLower(symbol), PerformanceYears)

	var cached []models.PriceBar
	if s.cache.Lookup(ctx, interfaces.NamespacePrices, key, &cached) {
		return cached, nil
	}

	to := time.Now()
	from := to.AddDate(-PerformanceYears, 0, 0)
	bars, err := s.provider.Prices(ctx, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", symbol, err)
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Int("bars", len(bars)).
		Msg("Fetched price series")

	s.cache.Store(ctx, interfaces.NamespacePrices, key, bars)
	return bars, nil
}
