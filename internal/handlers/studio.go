// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"brandstudio/internal/assets"
	"brandstudio/internal/catalog"
	"brandstudio/internal/export"
	"brandstudio/internal/layout"
	"brandstudio/internal/models"
	"brandstudio/internal/raster"
	"brandstudio/internal/slug"
)

// Studio groups the rendering handlers: interactive preview, artifact
// export, and asset-cache warm-up.
type Studio struct {
	catalog   *catalog.Catalog
	resolver  *layout.Resolver
	renderer  *raster.Renderer
	pipeline  *export.Pipeline
	preloader *assets.Preloader

	// baseCtx scopes background preloads to the server lifetime, so a
	// shutdown cancels any batches still pending.
	baseCtx context.Context
}

// NewStudio creates a new Studio handler group.
func NewStudio(c *catalog.Catalog, resolver *layout.Resolver, renderer *raster.Renderer, pipeline *export.Pipeline, preloader *assets.Preloader, baseCtx context.Context) *Studio {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Studio{
		catalog:   c,
		resolver:  resolver,
		renderer:  renderer,
		pipeline:  pipeline,
		preloader: preloader,
		baseCtx:   baseCtx,
	}
}

// renderRequest is the shared payload for preview and export: which
// template, the value snapshot, and an optional document bundle.
type renderRequest struct {
	TemplateID      string                 `json:"template_id"`
	ContainerWidth  float64                `json:"container_width,omitempty"`
	ContainerHeight float64                `json:"container_height,omitempty"`
	Values          models.Values          `json:"values,omitempty"`
	Bundle          *models.DocumentBundle `json:"bundle,omitempty"`
}

// exportRequest extends renderRequest with the artifact parameters.
type exportRequest struct {
	renderRequest
	Format  string `json:"format"`
	Quality int    `json:"quality,omitempty"`
}

// resolve validates the request and runs the layout resolver. Writes the
// error response itself when something is wrong.
func (h *Studio) resolve(w http.ResponseWriter, r *http.Request, req *renderRequest) (*models.Template, []layout.Object, bool) {
	t := h.catalog.ByID(req.TemplateID)
	if t == nil {
		respondError(w, http.StatusNotFound, "Template not found.")
		return nil, nil, false
	}
	if msg := validateValues(req.Values); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return nil, nil, false
	}

	objects, err := h.resolver.Resolve(r.Context(), t, req.Values, req.Bundle)
	if err != nil {
		if errors.Is(err, layout.ErrMissingCanvasDimensions) {
			// Catalog data error; nothing the client can fix.
			slog.Error("template with invalid canvas reached resolver", "template", t.ID)
			respondError(w, http.StatusInternalServerError, "Template data is invalid.")
			return nil, nil, false
		}
		slog.Error("layout resolve failed", "template", t.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Rendering failed.")
		return nil, nil, false
	}
	return t, objects, true
}

// Preview renders the scene as a PNG at the fit-to-container preview
// scale and streams it back for the editor surface.
func (h *Studio) Preview(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if msg := decodeBody(r, &req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	t, objects, ok := h.resolve(w, r, &req)
	if !ok {
		return
	}

	scale := layout.PreviewScale(t, req.ContainerWidth, req.ContainerHeight)
	h.renderer.SetPreviewScale(scale)

	img, err := h.renderer.RenderPreview(r.Context(), t, objects)
	if err != nil {
		slog.Error("preview render failed", "template", t.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Rendering failed.")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		slog.Error("preview encode failed", "template", t.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Rendering failed.")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Preview-Scale", strconv.FormatFloat(scale, 'f', -1, 64))
	w.Write(buf.Bytes())
}

// Export produces the downloadable artifact as a data URL. An empty
// pipeline result means the capture failed; the client shows "export
// failed, try again" — never a partial file.
func (h *Studio) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if msg := decodeBody(r, &req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Format must be png, jpg, or pdf.")
		return
	}
	if msg := validateQuality(req.Quality); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	t, objects, ok := h.resolve(w, r, &req.renderRequest)
	if !ok {
		return
	}

	dataURL := h.pipeline.Export(r.Context(), t, objects, format, req.Quality)
	if dataURL == "" {
		respondError(w, http.StatusBadGateway, "Export failed, try again.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"data_url": dataURL,
		"filename": slug.Filename(t.Name, string(format)),
	})
}

// preloadRequest lists asset URLs the editor wants warmed up.
type preloadRequest struct {
	URLs []string `json:"urls"`
}

// PreloadAssets warms the asset byte cache in the background and returns
// immediately. The warm-up is tied to the server lifetime, not the
// request, and stops on shutdown.
func (h *Studio) PreloadAssets(w http.ResponseWriter, r *http.Request) {
	var req preloadRequest
	if msg := decodeBody(r, &req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePreload(req.URLs); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	go h.preloader.Preload(h.baseCtx, req.URLs)
	respondJSON(w, http.StatusAccepted, map[string]int{"queued": len(req.URLs)})
}
