// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout resolves a template plus a value-store snapshot (and an
// optional document data bundle) into render-ready visual objects with
// absolute canvas positions, effective colors, and stacking order. The
// resolver never errors on missing user input — every empty placeholder
// has a defined fallback — and fails only on malformed template data.
package layout

import (
	"context"
	"errors"

	"brandstudio/internal/brightness"
	"brandstudio/internal/docfields"
	"brandstudio/internal/models"
	"brandstudio/internal/profanity"
)

// ErrMissingCanvasDimensions reports a template with a zero or negative
// canvas. Templates are static compiled-in data, so this is a programming
// error, not a runtime condition to recover from.
var ErrMissingCanvasDimensions = errors.New("layout: template canvas dimensions missing")

// Kind tags a resolved object for the renderer.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindRect  Kind = "rect"
)

// Object is one fully resolved on-canvas element for a single paint
// cycle. Geometry is in canvas-pixel space, not preview space. Owned by
// the render cycle that produced it.
type Object struct {
	ID   string `json:"id,omitempty"`
	Kind Kind   `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	Z    int     `json:"z"`

	// Text objects.
	Text     string           `json:"text,omitempty"`
	FontSize float64          `json:"font_size,omitempty"`
	Bold     bool             `json:"bold,omitempty"`
	Mono     bool             `json:"mono,omitempty"` // preformatted fixed-width block
	Align    models.TextAlign `json:"align,omitempty"`
	MaxWidth float64          `json:"max_width,omitempty"`

	// Fill for text and rects; hex color plus separate opacity so the
	// 50%-alpha placeholder hint survives hex round trips.
	Color string  `json:"color,omitempty"`
	Alpha float64 `json:"alpha,omitempty"`

	// Image objects.
	ImageURL string `json:"image_url,omitempty"`

	// Placeholder marks hint-state objects (no user value yet).
	Placeholder bool `json:"placeholder,omitempty"`
}

// Layout-tuning constants. The vehicle treatment and the logo box are
// documented special cases of the shipped formats, not general rules.
const (
	vehicleScale      = 1.4
	vehicleMargin     = 40.0
	logoWidth         = 120.0
	logoHeight        = 60.0
	logoEdgeOffset    = 24.0
	logoTopOffset     = 20.0
	headingSize       = 48.0
	headingSizeNarrow = 42.0 // vertical banner
	subheadingSize    = 32.0 // standalone
	bodySize          = 18.0
	headingLineHeight = 1.2
	centerMaxWidthPct = 0.95
)

// variantHeadingShift maps the layout variant to the vertical offset of
// the stacked heading group anchor.
var variantHeadingShift = map[models.LayoutVariant]float64{
	models.VariantDefault:    -30,
	models.VariantBottomLeft: 24,
}

// Classifier picks a legible text color for a background image URL.
// Satisfied by brightness.Classifier.
type Classifier interface {
	Classify(ctx context.Context, url string) brightness.Decision
}

// Resolver turns (template, values, bundle) tuples into resolved objects.
// It holds no per-render state; resolving the same inputs twice yields
// identical output.
type Resolver struct {
	classifier Classifier
	filter     *profanity.Filter // nil disables masking
}

// NewResolver creates a resolver using the given brightness classifier
// and optional profanity filter.
func NewResolver(classifier Classifier, filter *profanity.Filter) *Resolver {
	return &Resolver{classifier: classifier, filter: filter}
}

// PreviewScale computes the fit-to-container scale for the interactive
// preview, capped at 1 so small templates are never upscaled on screen.
// Export chooses its own scale independently.
func PreviewScale(t *models.Template, containerW, containerH float64) float64 {
	if t.Width <= 0 || t.Height <= 0 || containerW <= 0 || containerH <= 0 {
		return 1
	}
	scale := containerW / t.Width
	if s := containerH / t.Height; s < scale {
		scale = s
	}
	if scale > 1 {
		return 1
	}
	return scale
}

// Resolve maps the template and current values to the render-ready object
// list, back to front. bundle may be nil for non-document renders.
func (r *Resolver) Resolve(ctx context.Context, t *models.Template, values models.Values, bundle *models.DocumentBundle) ([]Object, error) {
	if t.Width <= 0 || t.Height <= 0 {
		return nil, ErrMissingCanvasDimensions
	}
	if values == nil {
		values = models.Values{}
	}

	s := &scene{
		resolver: r,
		ctx:      ctx,
		t:        t,
		values:   values,
		bundle:   bundle,
		anchors:  make(map[string]Object),
	}
	s.decision = s.backgroundDecision()

	s.addBackground()
	s.addStaticDecoration()
	s.addImages()
	s.addTexts()
	s.addLogo()
	s.addSignatures()

	return s.objects, nil
}

// scene accumulates resolved objects for one render cycle.
type scene struct {
	resolver *Resolver
	ctx      context.Context
	t        *models.Template
	values   models.Values
	bundle   *models.DocumentBundle
	decision brightness.Decision
	objects  []Object
	anchors  map[string]Object // resolved text objects by id, for signature overlays
}

func (s *scene) push(o Object) {
	o.Z = len(s.objects)
	if o.Alpha == 0 {
		o.Alpha = 1
	}
	s.objects = append(s.objects, o)
	if o.Kind == KindText && o.ID != "" {
		s.anchors[o.ID] = o
	}
}

// isBackground reports whether an image element is the background slot.
// Templates mark the slot either by the canonical id or by its label.
func isBackground(el *models.ImageElement) bool {
	return el.ID == "background" || el.Label == "Background"
}

// backgroundID returns the id of the template's background slot, falling
// back to the canonical id when no element claims it.
func (s *scene) backgroundID() string {
	for i := range s.t.Images {
		if isBackground(&s.t.Images[i]) {
			return s.t.Images[i].ID
		}
	}
	return "background"
}

// backgroundURL applies the value-then-static fallback for the background
// placeholder. Empty means "background color only".
func (s *scene) backgroundURL() string {
	id := s.backgroundID()
	if url := s.values.AssetURL(id); url != "" {
		return url
	}
	if obj := s.t.ObjectByID(id); obj != nil {
		return obj.Src
	}
	return ""
}

// backgroundDecision classifies the effective background: the image when
// one is set, the flat background color otherwise.
func (s *scene) backgroundDecision() brightness.Decision {
	if url := s.backgroundURL(); url != "" && s.resolver.classifier != nil {
		return s.resolver.classifier.Classify(s.ctx, url)
	}
	return colorDecision(s.t.Background)
}

func (s *scene) addBackground() {
	s.push(Object{
		ID:       "background",
		Kind:     KindImage,
		X:        0,
		Y:        0,
		W:        s.t.Width,
		H:        s.t.Height,
		ImageURL: s.backgroundURL(),
		Color:    s.t.Background,
	})
}

// addStaticDecoration passes through canvas objects that are not
// placeholders: rects and id-less text render exactly as declared.
func (s *scene) addStaticDecoration() {
	for i := range s.t.Objects {
		obj := &s.t.Objects[i]
		switch {
		case obj.Type == models.ObjectRect:
			s.push(Object{
				Kind:  KindRect,
				X:     obj.X,
				Y:     obj.Y,
				W:     obj.W,
				H:     obj.H,
				Color: fillOr(obj.Style.Fill, "#000000"),
			})
		case obj.Type == models.ObjectText && obj.ID == "":
			o := s.textObject("", obj.Text, obj, nil)
			o.Placeholder = false
			o.Alpha = 1
			o.Color = fillOr(obj.Style.Fill, "#1a1a1a")
			s.push(o)
		}
	}
}

// addImages resolves the generic image placeholders. Background, logo,
// and signature overlays are handled separately.
func (s *scene) addImages() {
	for i := range s.t.Images {
		el := &s.t.Images[i]
		if isBackground(el) || el.ID == "logo" {
			continue
		}
		if _, _, _, isSig := docfields.SignatureAnchor(el.ID); isSig {
			continue
		}

		url := s.values.AssetURL(el.ID)
		if url == "" {
			if obj := s.t.ObjectByID(el.ID); obj != nil {
				url = obj.Src
			}
		}
		if url == "" {
			// No value and no static default: the slot leaves no
			// placeholder box behind.
			continue
		}

		x, y, w, h := el.X, el.Y, el.W, el.H
		if obj := s.t.ObjectByID(el.ID); obj != nil {
			x, y, w, h = obj.X, obj.Y, obj.W, obj.H
		}

		if isVehicle(el) {
			x, y, w, h = s.vehicleBox(x, y, w, h)
		}

		s.push(Object{
			ID:       el.ID,
			Kind:     KindImage,
			X:        x,
			Y:        y,
			W:        w,
			H:        h,
			ImageURL: url,
		})
	}
}

// vehicleBox applies the vehicle-image treatment: 1.4x size, then a clamp
// keeping the scaled box plus its 40px right/bottom margin inside the
// canvas. On the vertical banner the box is re-centered horizontally
// regardless of its declared position.
func (s *scene) vehicleBox(x, y, w, h float64) (float64, float64, float64, float64) {
	w *= vehicleScale
	h *= vehicleScale

	if s.isVerticalBanner() {
		x = (s.t.Width - w) / 2
	}

	if maxX := s.t.Width - w - vehicleMargin; x > maxX {
		x = maxX
	}
	if maxY := s.t.Height - h - vehicleMargin; y > maxY {
		y = maxY
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

func (s *scene) isVerticalBanner() bool {
	return s.t.FormatID == models.FormatBannerVertical ||
		(s.t.Width == 400 && s.t.Height == 900)
}

// addLogo places the brand logo in a fixed 120x60 box: left corner on the
// square banner format, right corner otherwise. Without a URL the slot is
// omitted entirely — the logo never shows a placeholder box.
func (s *scene) addLogo() {
	url := s.values.AssetURL("logo")
	if url == "" {
		return
	}
	x := s.t.Width - logoWidth - logoEdgeOffset
	if s.t.FormatID == models.FormatBannerSquare {
		x = logoEdgeOffset
	}
	s.push(Object{
		ID:       "logo",
		Kind:     KindImage,
		X:        x,
		Y:        logoTopOffset,
		W:        logoWidth,
		H:        logoHeight,
		ImageURL: url,
	})
}

// addTexts resolves the editable text placeholders. A heading/subheading
// pair renders as one vertically stacked group sharing the heading's
// anchor; everything else renders independently.
func (s *scene) addTexts() {
	heading := s.t.TextByKind(models.TextHeading)
	subheading := s.t.TextByKind(models.TextSubheading)
	stacked := heading != nil && subheading != nil

	if stacked {
		s.addStackedPair(heading, subheading)
	}

	for i := range s.t.Texts {
		el := &s.t.Texts[i]
		if stacked && (el.ID == heading.ID || el.ID == subheading.ID) {
			continue
		}
		if o, ok := s.resolveText(el, 0, 0); ok {
			s.push(o)
		}
	}
}

// addStackedPair renders heading and subheading at the heading anchor,
// shifted by the variant offset, with the subheading sized at half the
// heading and placed one heading line below.
func (s *scene) addStackedPair(heading, subheading *models.TextElement) {
	shift := variantHeadingShift[s.t.Variant]

	h, ok := s.resolveText(heading, 0, shift)
	if !ok {
		return
	}
	s.push(h)

	sub, ok := s.resolveText(subheading, 0, 0)
	if !ok {
		return
	}
	sub.X = h.X
	sub.Y = h.Y + h.FontSize*headingLineHeight
	sub.Align = h.Align
	sub.MaxWidth = h.MaxWidth
	sub.FontSize = h.FontSize * 0.5
	s.push(sub)
}

// resolveText builds the resolved object for one text element. Returns
// ok=false when the element should be omitted (empty optional document
// fields on quotation/purchase-order layouts).
func (s *scene) resolveText(el *models.TextElement, dx, dy float64) (Object, bool) {
	obj := s.t.ObjectByID(el.ID)

	if docfields.Handles(s.bundle, el.ID) {
		text := docfields.FieldText(s.bundle, el.ID)
		if text == "" && s.bundle.Kind != models.DocumentContract {
			return Object{}, false
		}
		o := s.textObject(el.ID, text, obj, el)
		o.Y += docfields.VerticalOffset(s.bundle.Kind, el.ID) + dy
		o.X += dx
		o.Color = s.declaredFill(obj)
		o.Alpha = 1
		o.Mono = docfields.Preformatted(el.ID)
		return o, true
	}

	text, filled := s.values.Text(el.ID)
	if filled && s.resolver.filter != nil {
		text = s.resolver.filter.Clean(text)
	}
	if !filled {
		text = placeholderText(el)
	}

	o := s.textObject(el.ID, text, obj, el)
	o.X += dx
	o.Y += dy
	o.Placeholder = !filled

	switch {
	case !filled:
		// Hint state: 50%-opacity neutral, opposite the background.
		o.Color = s.decision.TextColor()
		o.Alpha = 0.5
	case s.t.Category == models.CategoryBanner:
		o.Color = s.decision.TextColor()
	default:
		o.Color = s.declaredFill(obj)
	}
	return o, true
}

// textObject assembles geometry, font, and alignment for a text element,
// preferring the static canvas object's declarations and falling back to
// the element metadata, then to the kind defaults.
func (s *scene) textObject(id, text string, obj *models.CanvasObject, el *models.TextElement) Object {
	o := Object{ID: id, Kind: KindText, Text: text}

	if obj != nil {
		o.X, o.Y, o.W, o.H = obj.X, obj.Y, obj.W, obj.H
		o.FontSize = obj.Style.FontSize
		o.Bold = obj.Style.Bold
		if obj.Style.Align == models.AlignCenter && obj.Style.Origin == models.AlignCenter {
			o.Align = models.AlignCenter
		} else {
			o.Align = models.AlignLeft
		}
	} else if el != nil {
		o.X, o.Y, o.W, o.H = el.X, el.Y, el.W, el.H
		o.Align = models.AlignLeft
	}

	if o.FontSize == 0 {
		o.FontSize = s.defaultFontSize(el)
	}
	if el != nil && el.Kind == models.TextHeading {
		o.Bold = true
	}

	if o.Align == models.AlignCenter {
		// Centered text anchors on the canvas midline, not its left edge.
		o.X = s.t.Width / 2
		o.MaxWidth = s.t.Width * centerMaxWidthPct
	} else {
		o.MaxWidth = s.t.Width - 2*o.X
		if o.MaxWidth < 0 {
			o.MaxWidth = s.t.Width - o.X
		}
	}
	return o
}

// defaultFontSize picks the kind default when the static object declares
// no size.
func (s *scene) defaultFontSize(el *models.TextElement) float64 {
	if el == nil {
		return bodySize
	}
	switch el.Kind {
	case models.TextHeading:
		if s.t.FormatID == models.FormatBannerVertical {
			return headingSizeNarrow
		}
		return headingSize
	case models.TextSubheading:
		return subheadingSize
	default:
		return bodySize
	}
}

// addSignatures overlays signature images relative to the resolved
// position of their anchor text placeholder. Rendered only when a value
// with a URL exists.
func (s *scene) addSignatures() {
	for i := range s.t.Images {
		el := &s.t.Images[i]
		anchorID, dx, dy, ok := docfields.SignatureAnchor(el.ID)
		if !ok {
			continue
		}
		url := s.values.AssetURL(el.ID)
		if url == "" {
			continue
		}

		x, y := el.X, el.Y
		if anchor, found := s.anchors[anchorID]; found {
			x = anchor.X + dx
			y = anchor.Y + dy
		}
		s.push(Object{
			ID:       el.ID,
			Kind:     KindImage,
			X:        x,
			Y:        y,
			W:        el.W,
			H:        el.H,
			ImageURL: url,
		})
	}
}

// declaredFill returns the static object's fill, defaulting to near-black.
func (s *scene) declaredFill(obj *models.CanvasObject) string {
	if obj != nil && obj.Style.Fill != "" {
		return obj.Style.Fill
	}
	return "#1a1a1a"
}

func placeholderText(el *models.TextElement) string {
	if el.Placeholder != "" {
		return el.Placeholder
	}
	if el.Label != "" {
		return el.Label
	}
	return el.ID
}

func isVehicle(el *models.ImageElement) bool {
	return el.ID == "vehicle" || el.Label == "Vehicle Model"
}

func fillOr(fill, fallback string) string {
	if fill != "" {
		return fill
	}
	return fallback
}
