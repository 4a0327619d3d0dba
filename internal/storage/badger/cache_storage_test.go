package badger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/interfaces"
)

func newTestStorage(t *testing.T) interfaces.CacheStorage {
	t.Helper()

	cfg := &common.BadgerConfig{Path: filepath.Join(t.TempDir(), "db")}
	db, err := NewBadgerDB(common.GetLogger(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewCacheStorage(db, common.GetLogger())
}

func TestCacheStorageRoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, interfaces.NamespaceFilings, "AAPL", []byte(`{"text":"body"}`)))

	payload, ts, err := storage.Get(ctx, interfaces.NamespaceFilings, "aapl")
	require.NoError(t, err)
	assert.Equal(t, `{"text":"body"}`, string(payload))
	assert.False(t, ts.IsZero())
}

func TestCacheStorageMiss(t *testing.T) {
	storage := newTestStorage(t)

	_, _, err := storage.Get(context.Background(), interfaces.NamespaceFilings, "missing")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)
}

func TestCacheStorageNamespaceIsolation(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, interfaces.NamespaceFilings, "msft", []byte("filing")))
	require.NoError(t, storage.Put(ctx, interfaces.NamespaceFinancials, "msft", []byte("financials")))

	payload, _, err := storage.Get(ctx, interfaces.NamespaceFinancials, "msft")
	require.NoError(t, err)
	assert.Equal(t, "financials", string(payload))

	require.NoError(t, storage.PurgeNamespace(ctx, interfaces.NamespaceFinancials))

	_, _, err = storage.Get(ctx, interfaces.NamespaceFinancials, "msft")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)

	// Filings namespace untouched
	payload, _, err = storage.Get(ctx, interfaces.NamespaceFilings, "msft")
	require.NoError(t, err)
	assert.Equal(t, "filing", string(payload))
}

func TestCacheStorageDelete(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, interfaces.NamespacePrices, "tsm", []byte("[]")))
	require.NoError(t, storage.Delete(ctx, interfaces.NamespacePrices, "TSM"))

	_, _, err := storage.Get(ctx, interfaces.NamespacePrices, "tsm")
	assert.ErrorIs(t, err, interfaces.ErrKeyNotFound)

	assert.ErrorIs(t, storage.Delete(ctx, interfaces.NamespacePrices, "tsm"), interfaces.ErrKeyNotFound)
}
