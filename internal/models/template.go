// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups templates by the kind of artifact they produce.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryBanner   Category = "banner"
	CategoryBrochure Category = "brochure"
)

// LayoutVariant identifies one of several interchangeable arrangements of
// the same format group. Carried explicitly on the template record so the
// resolver never has to sniff variant names out of free text.
type LayoutVariant string

const (
	VariantDefault    LayoutVariant = "default"
	VariantBottomLeft LayoutVariant = "bottom-left"
	VariantCenter     LayoutVariant = "center"
	VariantRight      LayoutVariant = "right"
)

// Known format ids with layout special cases. The resolver keys a handful
// of placement rules off these rather than canvas dimensions alone.
const (
	FormatBannerVertical = "banner-vertical"
	FormatBannerSquare   = "banner-square"
	FormatContract       = "doc-contract"
	FormatQuotation      = "doc-quotation"
	FormatPurchaseOrder  = "doc-purchase-order"
)

// ObjectType tags a static canvas object.
type ObjectType string

const (
	ObjectText  ObjectType = "text"
	ObjectImage ObjectType = "image"
	ObjectRect  ObjectType = "rect"
)

// TextAlign controls horizontal text placement inside a canvas object.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
)

// ObjectStyle holds the type-specific presentation attributes of a static
// canvas object. Zero values mean "no declaration" — the resolver applies
// its own defaults.
type ObjectStyle struct {
	FontSize float64   `json:"font_size,omitempty"`
	Bold     bool      `json:"bold,omitempty"`
	Fill     string    `json:"fill,omitempty"` // hex color, e.g. "#1a1a1a"
	Align    TextAlign `json:"align,omitempty"`
	Origin   TextAlign `json:"origin,omitempty"`
}

// CanvasObject is one positioned element of a template's static scene.
// Objects with an empty ID are plain decoration and bypass placeholder
// resolution entirely. Stacking order is slice order.
type CanvasObject struct {
	Type  ObjectType  `json:"type"`
	ID    string      `json:"id,omitempty"`
	Label string      `json:"label,omitempty"`
	Text  string      `json:"text,omitempty"` // default/decoration content
	Src   string      `json:"src,omitempty"`  // default image URL for image objects
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	W     float64     `json:"w"`
	H     float64     `json:"h"`
	Style ObjectStyle `json:"style"`
}

// TextKind classifies an editable text element for layout purposes.
type TextKind string

const (
	TextHeading    TextKind = "heading"
	TextSubheading TextKind = "subheading"
	TextBody       TextKind = "body"
)

// TextElement declares a user-editable text placeholder. Position and size
// duplicate the matching canvas object so layout still works for ids that
// have no static object.
type TextElement struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Kind        TextKind `json:"kind"`
	Placeholder string   `json:"placeholder"` // hint text shown when empty
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	W           float64  `json:"w"`
	H           float64  `json:"h"`
}

// ImageElement declares a user-editable image placeholder.
type ImageElement struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// Template is an immutable descriptor of one editable design. Constructed
// at catalog load time from static data and never mutated afterwards.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	FormatID    string         `json:"format_id"`
	FormatGroup string         `json:"format_group,omitempty"`
	Variant     LayoutVariant  `json:"variant,omitempty"`
	Width       float64        `json:"width"`      // canvas pixels
	Height      float64        `json:"height"`     // canvas pixels
	Background  string         `json:"background"` // hex color
	Objects     []CanvasObject `json:"objects"`
	Texts       []TextElement  `json:"texts"`
	Images      []ImageElement `json:"images"`
}

// ObjectByID returns the static canvas object with the given id, or nil.
func (t *Template) ObjectByID(id string) *CanvasObject {
	for i := range t.Objects {
		if t.Objects[i].ID == id {
			return &t.Objects[i]
		}
	}
	return nil
}

// TextByID returns the editable text element with the given id, or nil.
func (t *Template) TextByID(id string) *TextElement {
	for i := range t.Texts {
		if t.Texts[i].ID == id {
			return &t.Texts[i]
		}
	}
	return nil
}

// TextByKind returns the first editable text element of the given kind, or nil.
func (t *Template) TextByKind(kind TextKind) *TextElement {
	for i := range t.Texts {
		if t.Texts[i].Kind == kind {
			return &t.Texts[i]
		}
	}
	return nil
}

// ImageByID returns the editable image element with the given id, or nil.
func (t *Template) ImageByID(id string) *ImageElement {
	for i := range t.Images {
		if t.Images[i].ID == id {
			return &t.Images[i]
		}
	}
	return nil
}
