package financials

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/ternarybob/gauntlet/internal/models"
	"github.com/ternarybob/gauntlet/internal/services/cache"
)

type memStorage struct {
	mu      sync.Mutex
	entries map[string]interfaces.CacheEntry
}

func newMemStorage() *memStorage {
	return &memStorage{entries: map[string]interfaces.CacheEntry{}}
}

func (m *memStorage) Get(ctx context.Context, namespace, key string) ([]byte, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[namespace+"/"+key]
	if !ok {
		return nil, time.Time{}, interfaces.ErrKeyNotFound
	}
	return entry.Payload, entry.CreatedAt, nil
}

func (m *memStorage) Put(ctx context.Context, namespace, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[namespace+"/"+key] = interfaces.CacheEntry{
		Key:       namespace + "/" + key,
		Namespace: namespace,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	return nil
}

func (m *memStorage) Delete(ctx context.Context, namespace, key string) error  { return nil }
func (m *memStorage) PurgeNamespace(ctx context.Context, namespace string) error { return nil }

// fakeProvider counts calls per method for cache-hit assertions.
type fakeProvider struct {
	financialsCalls int
	profileCalls    int
	earningsCalls   int
	pricesCalls     int
}

func (f *fakeProvider) Financials(ctx context.Context, ticker string) (*models.Financials, error) {
	f.financialsCalls++
	return &models.Financials{
		Ticker: ticker,
		AnnualIncome: []models.IncomeRow{
			{Date: "2024-09-30", TotalRevenue: 391_035_000_000},
		},
	}, nil
}

func (f *fakeProvider) Profile(ctx context.Context, ticker string) (*models.Profile, error) {
	f.profileCalls++
	return &models.Profile{Ticker: ticker, Name: "Apple Inc", Country: "United States"}, nil
}

func (f *fakeProvider) Earnings(ctx context.Context, ticker string) ([]models.EarningsEvent, error) {
	f.earningsCalls++
	return []models.EarningsEvent{{Date: "2024-08-01", EPSActual: 1.40, EPSEstimate: 1.35}}, nil
}

func (f *fakeProvider) Prices(ctx context.Context, symbol string, from, to time.Time) ([]models.PriceBar, error) {
	f.pricesCalls++
	return []models.PriceBar{{Date: from, Close: 100}, {Date: to, Close: 180}}, nil
}

func newService(provider *fakeProvider) *Service {
	cacheSvc := cache.NewService(newMemStorage(), 15*24*time.Hour, common.GetLogger())
	return NewService(provider, cacheSvc, common.GetLogger())
}

func TestFinancialsCached(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(provider)
	ctx := context.Background()

	first, err := svc.Financials(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, first.AnnualIncome, 1)

	_, err = svc.Financials(ctx, "aapl")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.financialsCalls)
}

func TestProfileCached(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(provider)
	ctx := context.Background()

	profile, err := svc.Profile(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "United States", profile.Country)

	_, err = svc.Profile(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.profileCalls)
}

func TestEarningsCached(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(provider)
	ctx := context.Background()

	events, err := svc.Earnings(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, events, 1)

	_, err = svc.Earnings(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.earningsCalls)
}

func TestPerformancePricesKeyedByPeriod(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(provider)
	ctx := context.Background()

	bars, err := svc.PerformancePrices(ctx, "AAPL.US")
	require.NoError(t, err)
	require.Len(t, bars, 2)

	// Same symbol is a cache hit; the benchmark is a separate entry.
	_, err = svc.PerformancePrices(ctx, "AAPL.US")
	require.NoError(t, err)
	_, err = svc.PerformancePrices(ctx, "GSPC.INDX")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.pricesCalls)
}
