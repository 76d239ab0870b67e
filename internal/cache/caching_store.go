// Package cache provides a Redis read-through decorator for the curve store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"ratecurves/internal/logger"
	"ratecurves/internal/models"
	"ratecurves/internal/store"
)

// CachingStore decorates a store.Store with Redis caching of the curve
// name and version-date listings. Every other call passes straight through.
// Keys of a curve name are dropped once a write touching that name has
// committed; reads inside a transaction never use the cache.
type CachingStore struct {
	store.Store
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingStore wraps inner. If ttl is 0 it defaults to 5 minutes; an
// empty namespace becomes "curves". A nil client disables caching.
func NewCachingStore(rdb *redis.Client, ttl time.Duration, inner store.Store, namespace string) *CachingStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "curves"
	}
	return &CachingStore{
		Store:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListDistinctNames returns curve names, checking the cache first.
func (c *CachingStore) ListDistinctNames(ctx context.Context) ([]string, error) {
	if c.rdb == nil {
		return c.Store.ListDistinctNames(ctx)
	}
	var names []string
	if c.get(ctx, c.namesKey(), &names) {
		return names, nil
	}
	names, err := c.Store.ListDistinctNames(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, c.namesKey(), names)
	return names, nil
}

// ListVersionTimestamps returns version timestamps of name, checking the cache first.
func (c *CachingStore) ListVersionTimestamps(ctx context.Context, name string) ([]time.Time, error) {
	if c.rdb == nil {
		return c.Store.ListVersionTimestamps(ctx, name)
	}
	key := c.datesKey(name)
	var stamps []time.Time
	if c.get(ctx, key, &stamps) {
		return stamps, nil
	}
	stamps, err := c.Store.ListVersionTimestamps(ctx, name)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, stamps)
	return stamps, nil
}

// SaveCurve writes through and invalidates the curve's listings.
func (c *CachingStore) SaveCurve(ctx context.Context, curve *models.Curve) error {
	if err := c.Store.SaveCurve(ctx, curve); err != nil {
		return err
	}
	c.invalidate(ctx, curve.Name)
	return nil
}

// DeleteCurve writes through and invalidates the curve's listings.
func (c *CachingStore) DeleteCurve(ctx context.Context, curve *models.Curve) error {
	if err := c.Store.DeleteCurve(ctx, curve); err != nil {
		return err
	}
	c.invalidate(ctx, curve.Name)
	return nil
}

// Transaction runs fn on the inner store and, after a successful commit,
// invalidates every curve name fn saved or deleted.
func (c *CachingStore) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	rec := &recordingStore{}
	err := c.Store.Transaction(ctx, func(tx store.Store) error {
		rec.Store = tx
		return fn(rec)
	})
	if err != nil {
		return err
	}
	c.invalidate(ctx, rec.names()...)
	return nil
}

func (c *CachingStore) get(ctx context.Context, key string, out any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *CachingStore) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logger.For("cache").Warnw("cache set failed", "key", key, "error", err)
	}
}

func (c *CachingStore) invalidate(ctx context.Context, names ...string) {
	if c.rdb == nil || len(names) == 0 {
		return
	}
	keys := []string{c.namesKey()}
	for _, name := range names {
		keys = append(keys, c.datesKey(name))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.For("cache").Warnw("cache invalidation failed", "keys", keys, "error", err)
	}
}

func (c *CachingStore) namesKey() string {
	return c.namespace + ":names"
}

func (c *CachingStore) datesKey(name string) string {
	return fmt.Sprintf("%s:dates:%s", c.namespace, url.QueryEscape(name))
}

// recordingStore notes the curve names written through a transaction.
type recordingStore struct {
	store.Store
	mu      sync.Mutex
	touched []string
}

func (r *recordingStore) SaveCurve(ctx context.Context, curve *models.Curve) error {
	if err := r.Store.SaveCurve(ctx, curve); err != nil {
		return err
	}
	r.record(curve.Name)
	return nil
}

func (r *recordingStore) DeleteCurve(ctx context.Context, curve *models.Curve) error {
	if err := r.Store.DeleteCurve(ctx, curve); err != nil {
		return err
	}
	r.record(curve.Name)
	return nil
}

func (r *recordingStore) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.touched {
		if n == name {
			return
		}
	}
	r.touched = append(r.touched, name)
}

func (r *recordingStore) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.touched...)
}
