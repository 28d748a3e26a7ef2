// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brandstudio/internal/catalog"
	"brandstudio/internal/export"
	"brandstudio/internal/layout"
	"brandstudio/internal/models"
	"brandstudio/internal/store"
)

// thumbnailQuality marks the low-quality JPEG request that selects the
// half-resolution capture path.
const thumbnailQuality = 25

// Works groups the recent-work persistence handlers. Saving a work also
// renders its thumbnail through the export thumbnail path.
type Works struct {
	works    *store.WorkStore
	catalog  *catalog.Catalog
	resolver *layout.Resolver
	pipeline *export.Pipeline
}

// NewWorks creates a new Works handler group.
func NewWorks(works *store.WorkStore, c *catalog.Catalog, resolver *layout.Resolver, pipeline *export.Pipeline) *Works {
	return &Works{works: works, catalog: c, resolver: resolver, pipeline: pipeline}
}

// List returns the saved works, newest first.
func (h *Works) List(w http.ResponseWriter, r *http.Request) {
	works, err := h.works.List()
	if err != nil {
		slog.Error("list works failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load recent works.")
		return
	}
	if works == nil {
		works = []models.Work{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"works": works})
}

// saveRequest is the save/auto-save payload.
type saveRequest struct {
	ID         string                 `json:"id,omitempty"` // empty for new works
	Name       string                 `json:"name"`
	TemplateID string                 `json:"template_id"`
	Values     models.Values          `json:"values,omitempty"`
	Bundle     *models.DocumentBundle `json:"bundle,omitempty"`
}

// Save upserts a work, regenerating its thumbnail from the current
// values. A failed thumbnail render degrades to an empty thumbnail — the
// save itself still succeeds.
func (h *Works) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if msg := decodeBody(r, &req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateWorkName(req.Name); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateValues(req.Values); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	t := h.catalog.ByID(req.TemplateID)
	if t == nil {
		respondError(w, http.StatusNotFound, "Template not found.")
		return
	}

	work := &models.Work{
		Name:         req.Name,
		Category:     t.Category,
		TemplateID:   t.ID,
		Data:         req.Values,
		LastModified: time.Now(),
	}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Work id must be a UUID.")
			return
		}
		work.ID = id
	}

	if objects, err := h.resolver.Resolve(r.Context(), t, req.Values, req.Bundle); err == nil {
		work.ThumbnailDataURL = h.pipeline.Export(r.Context(), t, objects, export.FormatJPEG, thumbnailQuality)
	} else {
		slog.Warn("thumbnail resolve failed, saving without", "template", t.ID, "error", err)
	}

	if err := h.works.Save(work); err != nil {
		slog.Error("save work failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save work.")
		return
	}
	respondJSON(w, http.StatusOK, work)
}

// Get returns one saved work by id.
func (h *Works) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Work id must be a UUID.")
		return
	}
	work, err := h.works.FindByID(id)
	if err != nil {
		slog.Error("find work failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Could not load work.")
		return
	}
	if work == nil {
		respondError(w, http.StatusNotFound, "Work not found.")
		return
	}
	respondJSON(w, http.StatusOK, work)
}

// Delete removes one saved work.
func (h *Works) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Work id must be a UUID.")
		return
	}
	if err := h.works.Delete(id); err != nil {
		slog.Error("delete work failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Could not delete work.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
