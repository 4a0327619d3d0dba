package interfaces

import (
	"context"
	"time"

	"github.com/ternarybob/gauntlet/internal/models"
)

// FilingProvider retrieves annual filings. Implementations return a nil
// filing, not an error, when no filing exists; errors are reserved for
// transport failure.
type FilingProvider interface {
	// LatestAnnual returns the most recent 10-K (20-F fallback) for a ticker,
	// or nil if none exists.
	LatestAnnual(ctx context.Context, ticker string) (*models.Filing, error)
}

// MarketDataProvider exposes the financial-statement, profile, earnings, and
// price-history fields the checklist consumes.
type MarketDataProvider interface {
	Financials(ctx context.Context, ticker string) (*models.Financials, error)
	Profile(ctx context.Context, ticker string) (*models.Profile, error)
	Earnings(ctx context.Context, ticker string) ([]models.EarningsEvent, error)
	// Prices returns daily close history for a symbol. The symbol may be a
	// ticker or a benchmark index in provider format.
	Prices(ctx context.Context, symbol string, from, to time.Time) ([]models.PriceBar, error)
}
