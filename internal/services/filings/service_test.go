package filings

import (
	"context"
	"errors"
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

func (m *memStorage) Delete(ctx context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, namespace+"/"+key)
	return nil
}

func (m *memStorage) PurgeNamespace(ctx context.Context, namespace string) error {
	return nil
}

// fakeProvider counts fetches so tests can assert cache hits.
type fakeProvider struct {
	filing *models.Filing
	err    error
	calls  int
}

func (f *fakeProvider) LatestAnnual(ctx context.Context, ticker string) (*models.Filing, error) {
	f.calls++
	return f.filing, f.err
}

func newService(provider *fakeProvider) *Service {
	cacheSvc := cache.NewService(newMemStorage(), 15*24*time.Hour, common.GetLogger())
	return NewService(provider, cacheSvc, common.GetLogger())
}

func TestLatestAnnualCachesResult(t *testing.T) {
	provider := &fakeProvider{filing: &models.Filing{
		Ticker:   "AAPL",
		FormType: models.Form10K,
		Text:     "item 1. business",
	}}
	svc := newService(provider)
	ctx := context.Background()

	first, err := svc.LatestAnnual(ctx, "AAPL")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.LatestAnnual(ctx, "aapl")
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, 1, provider.calls, "second lookup should be served from cache")
	assert.Equal(t, first.Text, second.Text)
}

func TestLatestAnnualNoFiling(t *testing.T) {
	provider := &fakeProvider{}
	svc := newService(provider)

	filing, err := svc.LatestAnnual(context.Background(), "PRIV")
	require.NoError(t, err)
	assert.Nil(t, filing)
}

func TestLatestAnnualProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("edgar unavailable")}
	svc := newService(provider)

	_, err := svc.LatestAnnual(context.Background(), "AAPL")
	assert.Error(t, err)
}
