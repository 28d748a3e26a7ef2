// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandstudio/internal/catalog"
	"brandstudio/internal/models"
)

// Catalog groups the read-only template catalog handlers.
type Catalog struct {
	catalog *catalog.Catalog
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(c *catalog.Catalog) *Catalog {
	return &Catalog{catalog: c}
}

// TemplatesList returns one representative template per format group.
// With ?category=, results are limited to that category; otherwise all
// categories are returned.
func (h *Catalog) TemplatesList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var out []*models.Template
	if category != "" {
		if msg := validateCategory(category); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		out = h.catalog.UniqueByCategory(models.Category(category))
	} else {
		for _, c := range []models.Category{models.CategoryDocument, models.CategoryBanner, models.CategoryBrochure} {
			out = append(out, h.catalog.UniqueByCategory(c)...)
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"templates": out})
}

// TemplateGet returns one template by id.
func (h *Catalog) TemplateGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t := h.catalog.ByID(id)
	if t == nil {
		respondError(w, http.StatusNotFound, "Template not found.")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// FormatVariants returns every layout variant of a format group, so the
// editor can offer the variant switcher.
func (h *Catalog) FormatVariants(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	variants := h.catalog.ByFormatGroup(group)
	if len(variants) == 0 {
		respondError(w, http.StatusNotFound, "Unknown format group.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"variants": variants})
}
