// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// asset.go provides a Valkey-backed cache of remote asset bytes. Every
// render samples and draws the same background/vehicle images, so keeping
// the encoded bytes warm saves a network round trip per object per render.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// assetKeyPrefix is the Valkey key prefix for cached asset bytes.
	assetKeyPrefix = "asset:"

	// DefaultAssetTTL is how long fetched asset bytes stay cached.
	DefaultAssetTTL = 30 * time.Minute

	// maxAssetBytes caps what gets cached; anything larger is fetched
	// fresh each time rather than crowding out the working set.
	maxAssetBytes = 8 << 20
)

// AssetCache stores raw encoded image bytes keyed by source URL.
type AssetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssetCache creates an asset cache backed by the given Valkey client.
func NewAssetCache(client *redis.Client, ttl time.Duration) *AssetCache {
	if ttl == 0 {
		ttl = DefaultAssetTTL
	}
	return &AssetCache{client: client, ttl: ttl}
}

// Get retrieves cached bytes for an asset URL. Returns false on miss.
func (ac *AssetCache) Get(ctx context.Context, url string) ([]byte, bool) {
	val, err := ac.client.Get(ctx, assetKeyPrefix+url).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("asset cache get error", "url", url, "error", err)
		return nil, false
	}
	slog.Debug("asset cache hit", "url", url)
	return val, true
}

// Set stores fetched asset bytes with the configured TTL.
func (ac *AssetCache) Set(ctx context.Context, url string, data []byte) {
	if len(data) == 0 || len(data) > maxAssetBytes {
		return
	}
	if err := ac.client.Set(ctx, assetKeyPrefix+url, data, ac.ttl).Err(); err != nil {
		slog.Warn("asset cache set error", "url", url, "error", err)
	}
}

// Invalidate removes one asset from the cache.
func (ac *AssetCache) Invalidate(ctx context.Context, url string) {
	if err := ac.client.Del(ctx, assetKeyPrefix+url).Err(); err != nil {
		slog.Warn("asset cache invalidate error", "url", url, "error", err)
	}
}
