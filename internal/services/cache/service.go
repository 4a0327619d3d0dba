// Package cache provides TTL-based caching of fetched data over the
// persistent cache storage. An entry older than the TTL is treated as
// absent, never returned stale.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gauntlet/internal/interfaces"
)

// Service provides freshness-checked reads and timestamped writes.
type Service struct {
	storage interfaces.CacheStorage
	ttl     time.Duration
	logger  arbor.ILogger
}

// NewService creates a new cache service.
func NewService(storage interfaces.CacheStorage, ttl time.Duration, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		ttl:     ttl,
		logger:  logger,
	}
}

// TTL returns the configured expiry window.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Lookup retrieves a fresh entry into v. Returns false on a miss, an expired
// entry, or a corrupt payload; a corrupt payload is treated as cold cache,
// not an error.
func (s *Service) Lookup(ctx context.Context, namespace, key string, v interface{}) bool {
	payload, createdAt, err := s.storage.Get(ctx, namespace, key)
	if err == interfaces.ErrKeyNotFound {
		return false
	}
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("namespace", namespace).
			Str("key", key).
			Msg("Cache read failed, treating as miss")
		return false
	}

	if time.Since(createdAt) >= s.ttl {
		s.logger.Debug().
			Str("namespace", namespace).
			Str("key", key).
			Str("created_at", createdAt.Format("2006-01-02 15:04")).
			Msg("Cache entry expired")
		return false
	}

	if err := json.Unmarshal(payload, v); err != nil {
		s.logger.Warn().
			Err(err).
			Str("namespace", namespace).
			Str("key", key).
			Msg("Corrupt cache payload, treating as miss")
		return false
	}

	s.logger.Debug().
		Str("namespace", namespace).
		Str("key", key).
		Msg("Cache hit")
	return true
}

// Store writes a value under the key with a current timestamp. Failures are
// logged and swallowed; a write failure must not fail the fetch that
// produced the value.
func (s *Service) Store(ctx context.Context, namespace, key string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("namespace", namespace).
			Str("key", key).
			Msg("Failed to serialize value for cache")
		return
	}

	if err := s.storage.Put(ctx, namespace, key, payload); err != nil {
		s.logger.Warn().
			Err(err).
			Str("namespace", namespace).
			Str("key", key).
			Msg("Failed to write cache entry")
	}
}
