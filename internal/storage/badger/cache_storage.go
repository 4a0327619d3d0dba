package badger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gauntlet/internal/interfaces"
	"github.com/timshannon/badgerhold/v4"
)

// CacheStorage implements the CacheStorage interface for Badger
type CacheStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCacheStorage creates a new CacheStorage instance
func NewCacheStorage(db *BadgerDB, logger arbor.ILogger) interfaces.CacheStorage {
	return &CacheStorage{
		db:     db,
		logger: logger,
	}
}

// normalizeKey builds the composite store key, lowercased for
// case-insensitive ticker lookups
func (s *CacheStorage) normalizeKey(namespace, key string) string {
	return strings.ToLower(strings.TrimSpace(namespace)) + "/" + strings.ToLower(strings.TrimSpace(key))
}

// Get retrieves the payload and write time for a key
func (s *CacheStorage) Get(ctx context.Context, namespace, key string) ([]byte, time.Time, error) {
	storeKey := s.normalizeKey(namespace, key)
	var entry interfaces.CacheEntry
	err := s.db.Store().Get(storeKey, &entry)
	if err == badgerhold.ErrNotFound {
		return nil, time.Time{}, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get cache entry: %w", err)
	}

	return entry.Payload, entry.CreatedAt, nil
}

// Put inserts or replaces the payload for a key, stamped with now
func (s *CacheStorage) Put(ctx context.Context, namespace, key string, payload []byte) error {
	storeKey := s.normalizeKey(namespace, key)

	entry := interfaces.CacheEntry{
		Key:       storeKey,
		Namespace: strings.ToLower(strings.TrimSpace(namespace)),
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	if err := s.db.Store().Upsert(storeKey, &entry); err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}

	return nil
}

// Delete removes a single entry
func (s *CacheStorage) Delete(ctx context.Context, namespace, key string) error {
	storeKey := s.normalizeKey(namespace, key)
	err := s.db.Store().Delete(storeKey, &interfaces.CacheEntry{})
	if err == badgerhold.ErrNotFound {
		return interfaces.ErrKeyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// PurgeNamespace removes all entries in a namespace
func (s *CacheStorage) PurgeNamespace(ctx context.Context, namespace string) error {
	ns := strings.ToLower(strings.TrimSpace(namespace))

	var entries []interfaces.CacheEntry
	err := s.db.Store().Find(&entries, badgerhold.Where("Namespace").Eq(ns))
	if err != nil {
		return fmt.Errorf("failed to list cache entries for purge: %w", err)
	}

	for _, entry := range entries {
		if err := s.db.Store().Delete(entry.Key, &interfaces.CacheEntry{}); err != nil {
			s.logger.Warn().Str("key", entry.Key).Err(err).Msg("Failed to delete entry during purge")
		}
	}

	s.logger.Info().Str("namespace", ns).Int("count", len(entries)).Msg("Purged cache namespace")
	return nil
}
