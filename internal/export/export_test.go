// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"math"
	"strings"
	"testing"

	"brandstudio/internal/assets"
	"brandstudio/internal/layout"
	"brandstudio/internal/models"
	"brandstudio/internal/raster"
)

func testPipeline(t *testing.T) (*Pipeline, *raster.Renderer) {
	t.Helper()
	renderer, err := raster.NewRenderer(assets.NewLoader(nil, nil, 0))
	if err != nil {
		t.Fatal(err)
	}
	return New(renderer), renderer
}

func testTemplate() *models.Template {
	return &models.Template{
		ID: "hero", Name: "Hero Banner", Category: models.CategoryBanner,
		Width: 200, Height: 100, Background: "#336699",
	}
}

func testObjects() []layout.Object {
	return []layout.Object{
		{Kind: layout.KindRect, X: 10, Y: 10, W: 80, H: 40, Color: "#ffffff", Alpha: 1},
		{Kind: layout.KindText, Text: "Sale", X: 20, Y: 70, FontSize: 18, Color: "#000000", Alpha: 1, MaxWidth: 160},
	}
}

func decodeDataURL(t *testing.T, dataURL, wantPrefix string) []byte {
	t.Helper()
	if !strings.HasPrefix(dataURL, wantPrefix) {
		t.Fatalf("data URL prefix = %q, want %q", dataURL[:min(len(dataURL), 40)], wantPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, wantPrefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	return raw
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"PDF", FormatPDF, false},
		{" png ", FormatPNG, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = (%q, %v), want (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestCaptureScale(t *testing.T) {
	tests := []struct {
		format  Format
		quality int
		want    float64
	}{
		{FormatJPEG, 25, 0.5},
		{FormatJPEG, 30, 0.5},
		{FormatJPEG, 31, 2.0},
		{FormatJPEG, 90, 2.0},
		{FormatJPEG, 0, 2.0},
		{FormatPNG, 25, 2.0},
		{FormatPDF, 25, 2.0},
	}
	for _, tt := range tests {
		if got := CaptureScale(tt.format, tt.quality); got != tt.want {
			t.Errorf("CaptureScale(%s, %d) = %v, want %v", tt.format, tt.quality, got, tt.want)
		}
	}
}

func TestExportPNGCapturesAtDoubleResolution(t *testing.T) {
	p, _ := testPipeline(t)
	dataURL := p.Export(context.Background(), testTemplate(), testObjects(), FormatPNG, 0)

	raw := decodeDataURL(t, dataURL, "data:image/png;base64,")
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("decoded format = %q", format)
	}
	if cfg.Width != 400 || cfg.Height != 200 {
		t.Errorf("capture = %dx%d, want 400x200", cfg.Width, cfg.Height)
	}
}

func TestExportThumbnailCapturesAtHalfResolution(t *testing.T) {
	p, _ := testPipeline(t)
	dataURL := p.Export(context.Background(), testTemplate(), testObjects(), FormatJPEG, 25)

	raw := decodeDataURL(t, dataURL, "data:image/jpeg;base64,")
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("thumbnail = %dx%d, want 100x50", cfg.Width, cfg.Height)
	}
}

func TestExportPDF(t *testing.T) {
	p, _ := testPipeline(t)
	dataURL := p.Export(context.Background(), testTemplate(), testObjects(), FormatPDF, 0)

	raw := decodeDataURL(t, dataURL, "data:application/pdf;base64,")
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Errorf("payload does not start with %%PDF: %q", raw[:min(len(raw), 8)])
	}
}

func TestExportRestoresPreviewScale(t *testing.T) {
	p, renderer := testPipeline(t)
	renderer.SetPreviewScale(0.4)

	p.Export(context.Background(), testTemplate(), testObjects(), FormatPNG, 0)

	if got := renderer.PreviewScale(); got != 0.4 {
		t.Errorf("preview scale after export = %v, want 0.4 restored", got)
	}
}

func TestPageSizeMM(t *testing.T) {
	wMM, hMM, landscape := PageSizeMM(1000, 500)
	if math.Abs(wMM-264.583) > 1e-9 || math.Abs(hMM-132.2915) > 1e-9 {
		t.Errorf("page size = %v x %v mm", wMM, hMM)
	}
	if !landscape {
		t.Error("1000x500 should be landscape")
	}

	_, _, landscape = PageSizeMM(794, 1123)
	if landscape {
		t.Error("794x1123 should be portrait")
	}
}
