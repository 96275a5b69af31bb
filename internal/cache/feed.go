package cache

import (
	"context"
	"time"

	"quill/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// FeedCache holds time-bounded snapshots of the rendered home feed, keyed by
// page number. Snapshots are invalidated only by TTL expiry or an explicit
// Clear; writes to the underlying posts do not evict them. Within the TTL
// window every reader observes the same snapshot.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a feed cache on the given Redis client. A nil client
// degrades to an always-miss cache.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

// TTL returns the snapshot lifetime.
func (f *FeedCache) TTL() time.Duration {
	return f.ttl
}

// Get returns the cached snapshot for the given page, if present.
func (f *FeedCache) Get(ctx context.Context, page int) ([]byte, bool) {
	if f.client == nil {
		return nil, false
	}
	b, err := f.client.Get(ctx, FeedPageKey(page)).Bytes()
	if err != nil {
		middleware.FeedCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	middleware.FeedCacheHits.WithLabelValues("hit").Inc()
	return b, true
}

// Set stores a snapshot for the given page. Overwrites are idempotent
// re-renders, so no locking is required; last write wins.
func (f *FeedCache) Set(ctx context.Context, page int, snapshot []byte) {
	if f.client == nil {
		return
	}
	f.client.Set(ctx, FeedPageKey(page), snapshot, f.ttl)
}

// Clear drops every cached feed page. Exposed for admin tooling and tests.
func (f *FeedCache) Clear(ctx context.Context) error {
	if f.client == nil {
		return nil
	}
	var cursor uint64
	for {
		keys, next, err := f.client.Scan(ctx, cursor, "feed:page:*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := f.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
