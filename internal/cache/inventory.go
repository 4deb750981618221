package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	homeFeedKeyPrefix = "feed:home:%d"
	groupKeyPrefix    = "group:%s"
)

const (
	// HomeFeedTTL is the lifetime of the cached home feed snapshot. Expiry
	// is purely time-based: writes inside the window intentionally do NOT
	// refresh the snapshot.
	HomeFeedTTL = 20 * time.Second

	GroupTTL = 10 * time.Minute
)

// HomeFeedKey returns the cache key for a home feed page. Each page gets its
// own snapshot, all sharing the same short TTL.
func HomeFeedKey(page int) string {
	return fmt.Sprintf(homeFeedKeyPrefix, page)
}

// GroupKey returns the cache key for a group looked up by slug.
func GroupKey(slug string) string {
	return fmt.Sprintf(groupKeyPrefix, slug)
}

// Invalidate removes a key from the cache, if a client is configured.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateGroup removes a cached group by slug.
func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}
