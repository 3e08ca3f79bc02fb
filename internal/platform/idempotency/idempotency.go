// Package idempotency caches the outcome of a function per key for a TTL
// window, backed by Redis so the cached outcome survives process restarts
// and is shared by multiple worker instances, not just within one
// process's memory.
package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hotelforge/aggregator/internal/platform/logger"
)

const keyPrefix = "idempotency:"

type cachedResult struct {
	Data    json.RawMessage `json:"data"`
	Failed  bool            `json:"failed"`
	ErrText string          `json:"err_text,omitempty"`
}

// cache is the slice of *redis.Client this package depends on, narrowed
// so tests can substitute an in-memory fake without a real broker.
type cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
}

// Manager executes idempotent operations against a shared Redis cache.
type Manager struct {
	client cache
}

// New wraps an existing Redis client.
func New(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// NewWithCache wraps any cache implementation, letting callers outside
// this package substitute a fake in tests without a real Redis instance.
func NewWithCache(client cache) *Manager {
	return &Manager{client: client}
}

// Execute runs fn for key and caches its outcome for ttl; callers that
// arrive after that outcome is stored observe it without re-running fn.
// The cache lookup and the store are separate calls with no lock between
// them, so concurrent callers that all miss the cache each run fn. Errors
// from fn are cached too, so a terminal failure is not silently retried
// within the window.
func Execute[T any](ctx context.Context, m *Manager, key string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	redisKey := keyPrefix + key

	if cached, ok := m.lookup(ctx, redisKey); ok {
		logger.Infof("idempotency: returning cached result for key %s", key)
		var data T
		if cached.Failed {
			return zero, fmt.Errorf("%s", cached.ErrText)
		}
		if err := json.Unmarshal(cached.Data, &data); err != nil {
			return zero, fmt.Errorf("idempotency: failed to decode cached result: %w", err)
		}
		return data, nil
	}

	logger.Infof("idempotency: executing operation for key %s", key)
	result, err := fn(ctx)

	entry := cachedResult{Failed: err != nil}
	if err != nil {
		entry.ErrText = err.Error()
	} else {
		encoded, marshalErr := json.Marshal(result)
		if marshalErr != nil {
			return zero, fmt.Errorf("idempotency: failed to encode result: %w", marshalErr)
		}
		entry.Data = encoded
	}

	if marshalErr := m.store(ctx, redisKey, entry, ttl); marshalErr != nil {
		logger.ErrorWithErr(marshalErr, "idempotency: failed to cache result, operation is not protected against re-entry")
	}

	return result, err
}

func (m *Manager) lookup(ctx context.Context, redisKey string) (cachedResult, bool) {
	raw, err := m.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return cachedResult{}, false
	}
	var cached cachedResult
	if err := json.Unmarshal(raw, &cached); err != nil {
		return cachedResult{}, false
	}
	return cached, true
}

func (m *Manager) store(ctx context.Context, redisKey string, entry cachedResult, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, redisKey, raw, ttl).Err()
}

// Retry retries fn with linear backoff until it succeeds, ctx is
// cancelled, or maxAttempts is exhausted.
func Retry(ctx context.Context, maxAttempts int, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt < maxAttempts {
			backoff := time.Duration(attempt) * time.Second
			logger.Infof("idempotency: attempt %d failed, retrying in %v: %v", attempt, backoff, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", maxAttempts, err)
}
