// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static template catalog. Templates are
// compiled-in data: the catalog is built once at startup and read-only
// afterwards, so lookups need no locking.
package catalog

import (
	"fmt"

	"brandstudio/internal/models"
)

// Catalog indexes the static template definitions for lookup by id,
// format group, and category.
type Catalog struct {
	templates []models.Template
	byID      map[string]*models.Template
	byGroup   map[string][]*models.Template
}

// New builds a catalog from the given template definitions. It validates
// canvas dimensions up front — a template without them can never render,
// and that is a data error worth failing startup over.
func New(templates []models.Template) (*Catalog, error) {
	c := &Catalog{
		templates: templates,
		byID:      make(map[string]*models.Template, len(templates)),
		byGroup:   make(map[string][]*models.Template),
	}
	for i := range c.templates {
		t := &c.templates[i]
		if t.Width <= 0 || t.Height <= 0 {
			return nil, fmt.Errorf("catalog: template %q has invalid canvas %gx%g", t.ID, t.Width, t.Height)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate template id %q", t.ID)
		}
		c.byID[t.ID] = t
		if t.FormatGroup != "" {
			c.byGroup[t.FormatGroup] = append(c.byGroup[t.FormatGroup], t)
		}
	}
	return c, nil
}

// Default returns the catalog built from the compiled-in template data.
func Default() (*Catalog, error) {
	return New(builtinTemplates())
}

// ByID returns the template with the given id, or nil when unknown.
func (c *Catalog) ByID(id string) *models.Template {
	return c.byID[id]
}

// ByFormatGroup returns every layout variant of a format group, in
// definition order. Returns nil for an unknown group.
func (c *Catalog) ByFormatGroup(group string) []*models.Template {
	return c.byGroup[group]
}

// UniqueByCategory returns one representative template per format group in
// the given category, preferring the "default" variant. Templates without
// a format group represent themselves.
func (c *Catalog) UniqueByCategory(category models.Category) []*models.Template {
	var out []*models.Template
	seen := make(map[string]int) // group -> index into out
	for i := range c.templates {
		t := &c.templates[i]
		if t.Category != category {
			continue
		}
		if t.FormatGroup == "" {
			out = append(out, t)
			continue
		}
		if idx, ok := seen[t.FormatGroup]; ok {
			if t.Variant == models.VariantDefault && out[idx].Variant != models.VariantDefault {
				out[idx] = t
			}
			continue
		}
		seen[t.FormatGroup] = len(out)
		out = append(out, t)
	}
	return out
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.templates)
}
