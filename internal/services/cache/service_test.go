package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
)

// memStorage is an in-memory CacheStorage for tests.
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
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if e.Namespace == namespace {
			delete(m.entries, k)
		}
	}
	return nil
}

// backdate rewrites an entry's timestamp for expiry tests.
func (m *memStorage) backdate(namespace, key string, age time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := m.entries[namespace+"/"+key]
	entry.CreatedAt = time.Now().Add(-age)
	m.entries[namespace+"/"+key] = entry
}

type payload struct {
	Value string `json:"value"`
}

func TestLookupRoundTrip(t *testing.T) {
	storage := newMemStorage()
	svc := NewService(storage, 15*24*time.Hour, common.GetLogger())
	ctx := context.Background()

	svc.Store(ctx, interfaces.NamespaceFilings, "aapl", payload{Value: "filing body"})

	var got payload
	require.True(t, svc.Lookup(ctx, interfaces.NamespaceFilings, "aapl", &got))
	assert.Equal(t, "filing body", got.Value)
}

func TestLookupMiss(t *testing.T) {
	svc := NewService(newMemStorage(), time.Hour, common.GetLogger())

	var got payload
	assert.False(t, svc.Lookup(context.Background(), interfaces.NamespaceFilings, "missing", &got))
}

func TestLookupExpired(t *testing.T) {
	storage := newMemStorage()
	svc := NewService(storage, 15*24*time.Hour, common.GetLogger())
	ctx := context.Background()

	svc.Store(ctx, interfaces.NamespaceFilings, "aapl", payload{Value: "stale"})
	storage.backdate(interfaces.NamespaceFilings, "aapl", 16*24*time.Hour)

	var got payload
	assert.False(t, svc.Lookup(ctx, interfaces.NamespaceFilings, "aapl", &got))
}

func TestLookupCorruptPayloadIsMiss(t *testing.T) {
	storage := newMemStorage()
	svc := NewService(storage, time.Hour, common.GetLogger())
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, interfaces.NamespaceFinancials, "aapl", []byte("{not json")))

	var got payload
	assert.False(t, svc.Lookup(ctx, interfaces.NamespaceFinancials, "aapl", &got))
}
