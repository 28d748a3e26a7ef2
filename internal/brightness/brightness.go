// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brightness decides whether overlay text should be black or
// white for legibility against a background image. Decisions are cached
// in a bounded LRU so repeated renders of the same background never
// re-sample the image.
package brightness

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
)

const (
	// sampleSize is the fixed downsample grid for luminance averaging.
	sampleSize = 50

	// brightThreshold is the midpoint luminance above which an image
	// counts as bright.
	brightThreshold = 128.0

	// DefaultCacheSize bounds the decision cache.
	DefaultCacheSize = 128
)

// Decision is the classification outcome.
type Decision int

const (
	// Bright means the image is light — overlay text should be black.
	Bright Decision = iota
	// Dark means the image is dark — overlay text should be white.
	Dark
)

// TextColor returns the legible overlay text color for the decision as a
// hex string.
func (d Decision) TextColor() string {
	if d == Bright {
		return "#000000"
	}
	return "#ffffff"
}

// ImageSource fetches and decodes a remote image. Satisfied by
// assets.Loader.
type ImageSource interface {
	Fetch(ctx context.Context, url string) (image.Image, []byte, error)
}

// Classifier samples background images and memoizes decisions.
type Classifier struct {
	source ImageSource
	cache  *lru
}

// New creates a classifier reading images through source, with a decision
// cache bounded at cacheSize entries (DefaultCacheSize if <= 0).
func New(source ImageSource, cacheSize int) *Classifier {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Classifier{source: source, cache: newLRU(cacheSize)}
}

// Classify fetches the image at url, downsamples it, and classifies its
// average luminance. Decisions are cached under both the URL and a
// content hash: the URL entry lets a repeated render skip the fetch
// entirely, the content entry lets the same picture served from another
// URL skip re-sampling. A fetch or decode failure logs a diagnostic and
// defaults to Bright, since black text is the safer bet against an
// unknown, likely photographic background. Never returns an error: every
// failure path has a defined decision.
func (c *Classifier) Classify(ctx context.Context, url string) Decision {
	if url == "" {
		return Bright
	}

	if d, ok := c.cache.get(urlKey(url)); ok {
		return d
	}

	img, raw, err := c.source.Fetch(ctx, url)
	if err != nil {
		slog.Warn("brightness sample failed, defaulting to bright", "url", url, "error", err)
		c.cache.put(urlKey(url), Bright)
		return Bright
	}

	key := contentKey(raw)
	if d, ok := c.cache.get(key); ok {
		c.cache.put(urlKey(url), d)
		return d
	}

	d := classifyImage(img)
	c.cache.put(key, d)
	c.cache.put(urlKey(url), d)
	return d
}

// classifyImage computes the average relative luminance of a 50x50
// downsample and compares it against the midpoint.
func classifyImage(img image.Image) Decision {
	small := imaging.Resize(img, sampleSize, sampleSize, imaging.Box)
	bounds := small.Bounds()

	var sum float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			// 16-bit channels down to 8-bit before weighting.
			sum += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			count++
		}
	}
	if count == 0 {
		return Bright
	}
	if sum/float64(count) > brightThreshold {
		return Bright
	}
	return Dark
}

// contentKey derives the cache key from the image bytes, so the same
// picture served from two URLs still shares one decision.
func contentKey(raw []byte) string {
	h := sha256.Sum256(raw)
	return hex.EncodeToString(h[:])
}

// urlKey keys the per-URL front entry, including failure defaults where
// no content bytes exist.
func urlKey(url string) string {
	return "url:" + url
}
