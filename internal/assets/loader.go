// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets fetches and decodes remote images referenced by value
// store entries. It is the server-side stand-in for the browser's image
// loader: bytes come from the Valkey asset cache when warm, HTTP when not.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/chai2010/webp"

	"brandstudio/internal/cache"
)

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

const (
	// maxFetchBytes bounds a single asset download.
	maxFetchBytes = 32 << 20

	// DefaultFetchTimeout bounds one asset fetch when the caller's
	// context carries no earlier deadline.
	DefaultFetchTimeout = 15 * time.Second
)

// Loader fetches remote assets with an optional shared byte cache.
// A nil assetCache disables caching; every fetch goes to the network.
type Loader struct {
	client     *http.Client
	assetCache *cache.AssetCache
	timeout    time.Duration
}

// NewLoader creates a loader using the given HTTP client (nil for a
// default client) and asset cache (nil to disable caching).
func NewLoader(client *http.Client, assetCache *cache.AssetCache, timeout time.Duration) *Loader {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Loader{client: client, assetCache: assetCache, timeout: timeout}
}

// Fetch returns the decoded image and its raw encoded bytes for a URL.
// Errors are returned, not logged — every caller has a defined fallback
// and decides its own severity.
func (l *Loader) Fetch(ctx context.Context, url string) (image.Image, []byte, error) {
	raw, err := l.fetchBytes(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("assets: decode %s: %w", url, err)
	}
	return img, raw, nil
}

// fetchBytes reads the encoded asset, consulting the cache first.
func (l *Loader) fetchBytes(ctx context.Context, url string) ([]byte, error) {
	if l.assetCache != nil {
		if data, ok := l.assetCache.Get(ctx, url); ok {
			return data, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: request %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", url, err)
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("assets: %s exceeds %d byte limit", url, maxFetchBytes)
	}

	if l.assetCache != nil {
		l.assetCache.Set(ctx, url, data)
	}
	return data, nil
}
