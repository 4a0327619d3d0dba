// Package filings provides cache-through retrieval of the latest annual
// SEC filing for a ticker.
package filings

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/services/cache"
)

// Service fetches filings through the cache. A company with no annual
// filing on record yields (nil, nil); callers treat that as missing data,
// not an error.
type Service struct {
	provider interfaces.FilingProvider
	cache    *cache.Service
	logger   arbor.ILogger
}

// NewService creates a new filing service.
func NewService(provider interfaces.FilingProvider, cacheSvc *cache.Service, logger arbor.ILogger) *Service {
	return &Service{
		provider: provider,
		cache:    cacheSvc,
		logger:   logger,
	}
}

// LatestAnnual returns the most recent 10-K, falling back to 20-F for
// foreign private issuers. Results, including the full normalized text,
// are cached under the ticker.
func (s *Service) LatestAnnual(ctx context.Context, ticker string) (*models.Filing, error) {
	key := common.ParseTicker(ticker).CacheKey()

	var cached models.Filing
	if s.cache.Lookup(ctx, interfaces.NamespaceFilings, key, &cached) {
		return &cached, nil
	}

	filing, err := s.provider.LatestAnnual(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest annual filing for %s: %w", ticker, err)
	}
	if filing == nil {
		s.logger.Warn().
			Str("ticker", ticker).
			Msg("No annual filing on record")
		return nil, nil
	}

	s.logger.Info().
		Str("ticker", ticker).
		Str("form_type", string(filing.FormType)).
		Str("filing_date", filing.FilingDate).
		Int("text_length", len(filing.Text)).
		Msg("Fetched annual filing")

	s.cache.Store(ctx, interfaces.NamespaceFilings, key, filing)
	return filing, nil
}
