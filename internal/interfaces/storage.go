// Package interfaces defines the storage and provider contracts shared
// across services.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a cache key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Cache namespaces, one per data kind.
const (
	NamespaceFilings    = "filings"
	NamespaceFinancials = "financials"
	NamespacePrices     = "prices"
	NamespaceProfile    = "profile"
	NamespaceEarnings   = "earnings"
)

// CacheEntry is a generic wrapper around any cacheable fetch result.
type CacheEntry struct {
	Key       string    `json:"key" badgerhold:"key"` // namespace/key, lowercase
	Namespace string    `json:"namespace"`
	Payload   []byte    `json:"payload"` // JSON-serialized value
	CreatedAt time.Time `json:"created_at"`
}

// CacheStorage is a namespaced key -> (timestamp, JSON payload) persistent
// store. Expiry is the caller's concern: Get returns the stored timestamp and
// the cache service decides freshness against its TTL.
type CacheStorage interface {
	// Get retrieves the payload and write time for a key, or ErrKeyNotFound.
	Get(ctx context.Context, namespace, key string) ([]byte, time.Time, error)
	// Put inserts or replaces the payload for a key, stamped with now.
	Put(ctx context.Context, namespace, key string, payload []byte) error
	// Delete removes a single entry.
	Delete(ctx context.Context, namespace, key string) error
	// PurgeNamespace removes all entries in a namespace.
	PurgeNamespace(ctx context.Context, namespace string) error
}

// StorageManager aggregates the typed storages over one database.
type StorageManager interface {
	CacheStorage() CacheStorage
	Close() error
}
