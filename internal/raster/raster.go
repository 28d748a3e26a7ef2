// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package raster paints resolved layout objects into a pixel buffer. It
// is the server-side counterpart of the browser preview surface: the same
// object list drives both the interactive preview (at fit-to-container
// scale) and export capture (at the export scale).
package raster

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"brandstudio/internal/assets"
	"brandstudio/internal/layout"
	"brandstudio/internal/models"
)

const lineHeight = 1.2

// Renderer rasterizes resolved scenes. It owns the parsed font set and
// the shared preview-scale state the export pipeline temporarily resets.
type Renderer struct {
	loader  *assets.Loader
	regular *truetype.Font
	bold    *truetype.Font
	mono    *truetype.Font

	mu           sync.Mutex
	previewScale float64
}

// NewRenderer parses the embedded font set and returns a renderer reading
// images through loader.
func NewRenderer(loader *assets.Loader) (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		loader:       loader,
		regular:      regular,
		bold:         bold,
		mono:         mono,
		previewScale: 1,
	}, nil
}

// PreviewScale returns the current preview transform scale.
func (r *Renderer) PreviewScale() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.previewScale
}

// SetPreviewScale replaces the preview transform scale and returns the
// previous value, so callers can restore it. Export capture relies on
// this to make its resolution independent of whatever the editor shows.
func (r *Renderer) SetPreviewScale(s float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.previewScale
	if s > 0 {
		r.previewScale = s
	}
	return prev
}

// Render paints the objects for template t into a new RGBA buffer at the
// given scale. Image fetch failures degrade to skipped objects — a missing
// remote asset must not take the whole scene down.
func (r *Renderer) Render(ctx context.Context, t *models.Template, objects []layout.Object, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(t.Width * scale))
	h := int(math.Round(t.Height * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	// Canvas base: template background color, or transparent when the
	// template declares none (PNG export keeps the alpha).
	if bg, ok := layout.ParseHex(t.Background); ok && t.Background != "" {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	for _, obj := range objects {
		switch obj.Kind {
		case layout.KindImage:
			r.drawImage(ctx, dst, obj, scale)
		case layout.KindRect:
			r.drawRect(dst, obj, scale)
		case layout.KindText:
			r.drawText(dst, obj, scale)
		}
	}
	return dst, nil
}

// RenderPreview paints at the renderer's current preview scale.
func (r *Renderer) RenderPreview(ctx context.Context, t *models.Template, objects []layout.Object) (*image.RGBA, error) {
	return r.Render(ctx, t, objects, r.PreviewScale())
}

// drawImage fetches and composites one image object. The background slot
// cover-fills its box; every other image fits inside its box preserving
// aspect ratio, centered.
func (r *Renderer) drawImage(ctx context.Context, dst *image.RGBA, obj layout.Object, scale float64) {
	box := scaledRect(obj, scale)
	if obj.ImageURL == "" {
		// Backgroundless background object: flat color was already laid
		// down from the template; nothing to composite.
		return
	}

	src, _, err := r.loader.Fetch(ctx, obj.ImageURL)
	if err != nil {
		slog.Warn("raster: image skipped", "id", obj.ID, "url", obj.ImageURL, "error", err)
		return
	}

	bw, bh := box.Dx(), box.Dy()
	if bw < 1 || bh < 1 {
		return
	}

	if obj.ID == "background" {
		fill := imaging.Fill(src, bw, bh, imaging.Center, imaging.Lanczos)
		draw.Draw(dst, box, fill, image.Point{}, draw.Over)
		return
	}

	fit := imaging.Fit(src, bw, bh, imaging.Lanczos)
	offset := image.Pt(
		box.Min.X+(bw-fit.Bounds().Dx())/2,
		box.Min.Y+(bh-fit.Bounds().Dy())/2,
	)
	draw.Draw(dst, fit.Bounds().Add(offset), fit, image.Point{}, draw.Over)
}

func (r *Renderer) drawRect(dst *image.RGBA, obj layout.Object, scale float64) {
	c, _ := layout.ParseHex(obj.Color)
	draw.Draw(dst, scaledRect(obj, scale), image.NewUniform(withAlpha(c, obj.Alpha)), image.Point{}, draw.Over)
}

// drawText wraps and paints one text object. The layout's MaxWidth is the
// wrap limit; alignment decides whether X is a left edge or a midline.
func (r *Renderer) drawText(dst *image.RGBA, obj layout.Object, scale float64) {
	if obj.Text == "" {
		return
	}
	size := obj.FontSize * scale
	if size < 1 {
		return
	}

	f := r.regular
	switch {
	case obj.Mono:
		f = r.mono
	case obj.Bold:
		f = r.bold
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72, // 1pt == 1px so layout font sizes are pixel sizes
		Hinting: font.HintingFull,
	})
	defer face.Close()

	c, _ := layout.ParseHex(obj.Color)
	src := image.NewUniform(withAlpha(c, obj.Alpha))

	lines := textLines(face, obj, obj.MaxWidth*scale)

	ascent := face.Metrics().Ascent.Ceil()
	y := int(math.Round(obj.Y*scale)) + ascent
	step := int(math.Round(size * lineHeight))

	for _, line := range lines {
		lineW := font.MeasureString(face, line).Ceil()
		var x int
		if obj.Align == models.AlignCenter {
			x = int(math.Round(obj.X*scale)) - lineW/2
		} else {
			x = int(math.Round(obj.X * scale))
		}
		d := font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(line)
		y += step
	}
}

// textLines turns an object's text into the lines to paint. Monospaced
// objects carry preformatted blocks whose column padding must survive even
// when a line overflows the wrap limit, so they split on newlines only.
func textLines(face font.Face, obj layout.Object, maxWidth float64) []string {
	if obj.Mono {
		return strings.Split(obj.Text, "\n")
	}
	return wrapText(face, obj.Text, maxWidth)
}

// wrapText splits text on explicit newlines, then word-wraps each line at
// maxWidth. Words longer than the limit stay unbroken rather than being
// hyphenated.
func wrapText(face font.Face, text string, maxWidth float64) []string {
	var out []string
	limit := fixed.I(int(maxWidth))
	for _, para := range strings.Split(text, "\n") {
		// Lines that fit keep their spacing verbatim.
		if maxWidth <= 0 || font.MeasureString(face, para) <= limit {
			out = append(out, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate) > limit {
				out = append(out, line)
				line = word
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}

func scaledRect(obj layout.Object, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Round(obj.X*scale)),
		int(math.Round(obj.Y*scale)),
		int(math.Round((obj.X+obj.W)*scale)),
		int(math.Round((obj.Y+obj.H)*scale)),
	)
}

// withAlpha applies the object opacity to an otherwise opaque fill color.
func withAlpha(c color.RGBA, alpha float64) color.Color {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}
