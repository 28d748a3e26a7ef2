// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Asset is a reference to a remote image the user picked for an image
// placeholder. Only the URL matters to the rendering core; the rest is
// editor chrome (pickers, thumbnails).
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url,omitempty"`
	Category string `json:"category,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// FieldValue is one user-supplied value for a placeholder: either text or
// an asset reference, never both.
type FieldValue struct {
	Text  string `json:"text,omitempty"`
	Asset *Asset `json:"asset,omitempty"`
}

// Values is the per-render snapshot of user input, keyed by placeholder id.
// A missing key always means "use the template default", never an error.
type Values map[string]FieldValue

// Text returns the text value for a placeholder id and whether one is set.
func (v Values) Text(id string) (string, bool) {
	fv, ok := v[id]
	if !ok || fv.Text == "" {
		return "", false
	}
	return fv.Text, true
}

// AssetURL returns the asset URL for a placeholder id, or "" when the
// placeholder is empty or holds a URL-less asset.
func (v Values) AssetURL(id string) string {
	fv, ok := v[id]
	if !ok || fv.Asset == nil {
		return ""
	}
	return fv.Asset.URL
}
