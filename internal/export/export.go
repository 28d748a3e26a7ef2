// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export turns a resolved scene into a downloadable artifact: a
// PNG, JPEG, or single-page PDF data URL. Capture resolution is chosen by
// the pipeline, independent of whatever preview scale the editor happens
// to be showing.
package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"brandstudio/internal/layout"
	"brandstudio/internal/models"
	"brandstudio/internal/raster"
)

// Format selects the artifact encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatPDF  Format = "pdf"
)

// ParseFormat normalizes a user-supplied format string. "jpeg" aliases
// "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

const (
	// mmPerPixel converts canvas pixels to millimeters at the assumed 96 DPI.
	mmPerPixel = 0.264583

	// captureScaleFull is used for user-facing exports: a raster sharper
	// than the on-screen preview.
	captureScaleFull = 2.0

	// captureScaleThumb is the internal auto-save thumbnail path.
	captureScaleThumb = 0.5

	// thumbQualityMax distinguishes thumbnail requests: a low-quality
	// JPEG ask signals the auto-save path.
	thumbQualityMax = 30

	// DefaultQuality applies when a JPEG request carries none.
	DefaultQuality = 90
)

// CaptureScale picks the raster density for a request: half-resolution
// for low-quality JPEG thumbnails, double-resolution otherwise.
func CaptureScale(format Format, quality int) float64 {
	if format == FormatJPEG && quality > 0 && quality <= thumbQualityMax {
		return captureScaleThumb
	}
	return captureScaleFull
}

// Pipeline snapshots rendered scenes into artifacts.
type Pipeline struct {
	renderer *raster.Renderer
}

// New creates an export pipeline over the shared renderer.
func New(renderer *raster.Renderer) *Pipeline {
	return &Pipeline{renderer: renderer}
}

// Export rasterizes the resolved objects at the capture scale for the
// requested format and returns the artifact as a data URL. Any capture or
// encoding failure is logged and surfaced as "" — callers must treat an
// empty result as a failed export; a partial file is never returned.
//
// The shared preview transform is forced to 1 for the duration of the
// capture and restored unconditionally, so exporting never leaves the
// live preview distorted.
func (p *Pipeline) Export(ctx context.Context, t *models.Template, objects []layout.Object, format Format, quality int) string {
	prev := p.renderer.SetPreviewScale(1)
	defer p.renderer.SetPreviewScale(prev)

	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	scale := CaptureScale(format, quality)

	img, err := p.renderer.Render(ctx, t, objects, scale)
	if err != nil {
		slog.Error("export capture failed", "template", t.ID, "format", format, "error", err)
		return ""
	}

	switch format {
	case FormatPNG:
		return encodePNG(img)
	case FormatJPEG:
		return encodeJPEG(img, quality)
	case FormatPDF:
		return encodePDF(img, t.Width, t.Height)
	}
	slog.Error("export format unhandled", "format", format)
	return ""
}

func encodePNG(img image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		slog.Error("export png encode failed", "error", err)
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func encodeJPEG(img image.Image, quality int) string {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		slog.Error("export jpeg encode failed", "error", err)
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// encodePDF wraps the raster as a single embedded image on one page.
// Page size is the canvas in millimeters at 96 DPI; orientation is
// landscape exactly when the canvas is wider than tall.
func encodePDF(img image.Image, widthPx, heightPx float64) string {
	wMM := widthPx * mmPerPixel
	hMM := heightPx * mmPerPixel

	// gofpdf expects the size in portrait convention and flips it for
	// landscape pages itself.
	orientation := "P"
	size := gofpdf.SizeType{Wd: wMM, Ht: hMM}
	if wMM > hMM {
		orientation = "L"
		size = gofpdf.SizeType{Wd: hMM, Ht: wMM}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		slog.Error("export pdf raster encode failed", "error", err)
		return ""
	}
	pdf.RegisterImageOptionsReader("scene", gofpdf.ImageOptions{ImageType: "PNG"}, &pngBuf)
	pdf.ImageOptions("scene", 0, 0, wMM, hMM, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		slog.Error("export pdf output failed", "error", err)
		return ""
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(out.Bytes())
}

// PageSizeMM returns the PDF page dimensions in millimeters for a canvas,
// plus whether the page is landscape. Exposed for callers that surface
// physical dimensions in the UI.
func PageSizeMM(widthPx, heightPx float64) (wMM, hMM float64, landscape bool) {
	return widthPx * mmPerPixel, heightPx * mmPerPixel, widthPx > heightPx
}
