// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preload.go warms the asset cache for large image galleries in small
// batches with a pause between them, so a preload burst never starves
// interactive fetches. The loop is context-cancellable: dismissing the
// view that requested it stops the remaining batches.
package assets

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultBatchSize is how many assets one batch fetches.
	DefaultBatchSize = 5

	// DefaultBatchDelay is the pause between batches.
	DefaultBatchDelay = 500 * time.Millisecond
)

// Preloader fetches lists of asset URLs in timed batches.
type Preloader struct {
	loader    *Loader
	batchSize int
	delay     time.Duration
}

// NewPreloader creates a preloader over the given loader. Zero values for
// batchSize and delay select the defaults.
func NewPreloader(loader *Loader, batchSize int, delay time.Duration) *Preloader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if delay <= 0 {
		delay = DefaultBatchDelay
	}
	return &Preloader{loader: loader, batchSize: batchSize, delay: delay}
}

// Preload fetches every URL, batchSize at a time, pausing between batches.
// Individual fetch failures are logged and skipped — preloading is best
// effort. Returns the number of assets fetched successfully, stopping
// early when ctx is cancelled.
func (p *Preloader) Preload(ctx context.Context, urls []string) int {
	var warmed int
	for start := 0; start < len(urls); start += p.batchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				slog.Debug("asset preload cancelled", "warmed", warmed, "total", len(urls))
				return warmed
			case <-time.After(p.delay):
			}
		}

		end := start + p.batchSize
		if end > len(urls) {
			end = len(urls)
		}
		for _, url := range urls[start:end] {
			if ctx.Err() != nil {
				return warmed
			}
			if _, err := p.loader.fetchBytes(ctx, url); err != nil {
				slog.Warn("asset preload fetch failed", "url", url, "error", err)
				continue
			}
			warmed++
		}
	}
	slog.Debug("asset preload complete", "warmed", warmed, "total", len(urls))
	return warmed
}
