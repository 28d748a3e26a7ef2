// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// data.go defines the compiled-in template catalog. Positions and sizes
// are canvas pixels, tuned per format by the design team.
package catalog

import "brandstudio/internal/models"

// builtinTemplates returns the full static catalog: one format group of
// promotion banners in four layout variants, the vertical and square
// banner formats, the three document formats, and a brochure.
func builtinTemplates() []models.Template {
	return []models.Template{
		// --- Promotion banners: hero 1280x700, four arrangements ---
		heroBanner("banner-hero-default", "Hero Banner Default", models.VariantDefault, 120, 100, 120, 180),
		heroBanner("banner-hero-bottom-left", "Hero Banner Bottom Left", models.VariantBottomLeft, 120, 400, 120, 480),
		heroBanner("banner-hero-center", "Hero Banner Center", models.VariantCenter, 640, 240, 640, 320),
		heroBanner("banner-hero-right", "Hero Banner Right", models.VariantRight, 760, 120, 760, 200),

		// --- Vertical banner: 400x900, single variant ---
		{
			ID:          models.FormatBannerVertical,
			Name:        "Vertical Banner",
			Category:    models.CategoryBanner,
			FormatID:    models.FormatBannerVertical,
			FormatGroup: "banner-vertical",
			Variant:     models.VariantDefault,
			Width:       400,
			Height:      900,
			Background:  "#10141d",
			Objects: []models.CanvasObject{
				{Type: models.ObjectImage, ID: "background", Label: "Background", X: 0, Y: 0, W: 400, H: 900},
				{Type: models.ObjectImage, ID: "vehicle", Label: "Vehicle Model", X: 40, Y: 420, W: 320, H: 180},
				{Type: models.ObjectText, ID: "headline", X: 40, Y: 120, W: 320, H: 64,
					Style: models.ObjectStyle{Bold: true, Fill: "#ffffff", Align: models.AlignCenter, Origin: models.AlignCenter}},
				{Type: models.ObjectText, ID: "subheadline", X: 40, Y: 200, W: 320, H: 40,
					Style: models.ObjectStyle{Fill: "#ffffff", Align: models.AlignCenter, Origin: models.AlignCenter}},
			},
			Texts: []models.TextElement{
				{ID: "headline", Label: "Headline", Kind: models.TextHeading, Placeholder: "Enter headline", X: 40, Y: 120, W: 320, H: 64},
				{ID: "subheadline", Label: "Subheadline", Kind: models.TextSubheading, Placeholder: "Enter subheadline", X: 40, Y: 200, W: 320, H: 40},
			},
			Images: []models.ImageElement{
				{ID: "background", Label: "Background", X: 0, Y: 0, W: 400, H: 900},
				{ID: "vehicle", Label: "Vehicle Model", X: 40, Y: 420, W: 320, H: 180},
				{ID: "logo", Label: "Brand Logo", X: 240, Y: 20, W: 120, H: 60},
			},
		},

		// --- Square banner: 800x800, logo sits on the left corner ---
		{
			ID:          models.FormatBannerSquare,
			Name:        "Square Banner",
			Category:    models.CategoryBanner,
			FormatID:    models.FormatBannerSquare,
			FormatGroup: "banner-square",
			Variant:     models.VariantDefault,
			Width:       800,
			Height:      800,
			Background:  "#1b2230",
			Objects: []models.CanvasObject{
				{Type: models.ObjectImage, ID: "background", Label: "Background", X: 0, Y: 0, W: 800, H: 800},
				{Type: models.ObjectImage, ID: "vehicle", Label: "Vehicle Model", X: 180, Y: 380, W: 440, H: 240},
				{Type: models.ObjectText, ID: "headline", X: 400, Y: 140, W: 640, H: 72,
					Style: models.ObjectStyle{Bold: true, Fill: "#ffffff", Align: models.AlignCenter, Origin: models.AlignCenter}},
				{Type: models.ObjectText, ID: "subheadline", X: 400, Y: 230, W: 640, H: 44,
					Style: models.ObjectStyle{Fill: "#ffffff", Align: models.AlignCenter, Origin: models.AlignCenter}},
			},
			Texts: []models.TextElement{
				{ID: "headline", Label: "Headline", Kind: models.TextHeading, Placeholder: "Enter headline", X: 400, Y: 140, W: 640, H: 72},
				{ID: "subheadline", Label: "Subheadline", Kind: models.TextSubheading, Placeholder: "Enter subheadline", X: 400, Y: 230, W: 640, H: 44},
			},
			Images: []models.ImageElement{
				{ID: "background", Label: "Background", X: 0, Y: 0, W: 800, H: 800},
				{ID: "vehicle", Label: "Vehicle Model", X: 180, Y: 380, W: 440, H: 240},
				{ID: "logo", Label: "Brand Logo", X: 24, Y: 20, W: 120, H: 60},
			},
		},

		// --- Documents: A4 portrait at 96dpi ---
		contractTemplate(),
		quotationTemplate(),
		purchaseOrderTemplate(),

		// --- Brochure: A4 landscape ---
		{
			ID:          "brochure-trifold",
			Name:        "Tri-fold Brochure",
			Category:    models.CategoryBrochure,
			FormatID:    "brochure-trifold",
			FormatGroup: "brochure-trifold",
			Variant:     models.VariantDefault,
			Width:       1123,
			Height:      794,
			Background:  "#f4f1ea",
			Objects: []models.CanvasObject{
				{Type: models.ObjectImage, ID: "background", Label: "Background", X: 0, Y: 0, W: 1123, H: 794},
				{Type: models.ObjectRect, X: 0, Y: 660, W: 1123, H: 134, Style: models.ObjectStyle{Fill: "#10141d"}},
				{Type: models.ObjectImage, ID: "vehicle", Label: "Vehicle Model", X: 600, Y: 220, W: 440, H: 260},
				{Type: models.ObjectText, ID: "headline", X: 80, Y: 110, W: 460, H: 64,
					Style: models.ObjectStyle{Bold: true, Fill: "#10141d"}},
				{Type: models.ObjectText, ID: "body", X: 80, Y: 220, W: 420, H: 320,
					Style: models.ObjectStyle{FontSize: 18, Fill: "#3a3f48"}},
				{Type: models.ObjectText, Text: "brandstudio.example/brochures", X: 80, Y: 710, W: 420, H: 28,
					Style: models.ObjectStyle{FontSize: 14, Fill: "#9aa3b2"}},
			},
			Texts: []models.TextElement{
				{ID: "headline", Label: "Headline", Kind: models.TextHeading, Placeholder: "Enter headline", X: 80, Y: 110, W: 460, H: 64},
				{ID: "body", Label: "Body Copy", Kind: models.TextBody, Placeholder: "Enter description", X: 80, Y: 220, W: 420, H: 320},
			},
			Images: []models.ImageElement{
				{ID: "background", Label: "Background", X: 0, Y: 0, W: 1123, H: 794},
				{ID: "vehicle", Label: "Vehicle Model", X: 600, Y: 220, W: 440, H: 260},
				{ID: "logo", Label: "Brand Logo", X: 979, Y: 20, W: 120, H: 60},
			},
		},
	}
}

// heroBanner builds one 1280x700 hero variant. Only the heading/subheading
// anchors move between variants; the editable slots are identical.
func heroBanner(id, name string, variant models.LayoutVariant, hx, hy, sx, sy float64) models.Template {
	align := models.AlignLeft
	origin := models.AlignLeft
	if variant == models.VariantCenter {
		align = models.AlignCenter
		origin = models.AlignCenter
	}
	return models.Template{
		ID:          id,
		Name:        name,
		Category:    models.CategoryBanner,
		FormatID:    "banner-hero",
		FormatGroup: "banner-hero",
		Variant:     variant,
		Width:       1280,
		Height:      700,
		Background:  "#10141d",
		Objects: []models.CanvasObject{
			{Type: models.ObjectImage, ID: "background", Label: "Background", X: 0, Y: 0, W: 1280, H: 700},
			{Type: models.ObjectImage, ID: "vehicle", Label: "Vehicle Model", X: 620, Y: 260, W: 600, H: 300},
			{Type: models.ObjectText, ID: "headline", X: hx, Y: hy, W: 560, H: 72,
				Style: models.ObjectStyle{Bold: true, Fill: "#ffffff", Align: align, Origin: origin}},
			{Type: models.ObjectText, ID: "subheadline", X: sx, Y: sy, W: 560, H: 44,
				Style: models.ObjectStyle{Fill: "#ffffff", Align: align, Origin: origin}},
		},
		Texts: []models.TextElement{
			{ID: "headline", Label: "Headline", Kind: models.TextHeading, Placeholder: "Enter headline", X: hx, Y: hy, W: 560, H: 72},
			{ID: "subheadline", Label: "Subheadline", Kind: models.TextSubheading, Placeholder: "Enter subheadline", X: sx, Y: sy, W: 560, H: 44},
		},
		Images: []models.ImageElement{
			{ID: "background", Label: "Background", X: 0, Y: 0, W: 1280, H: 700},
			{ID: "vehicle", Label: "Vehicle Model", X: 620, Y: 260, W: 600, H: 300},
			{ID: "logo", Label: "Brand Logo", X: 1136, Y: 20, W: 120, H: 60},
		},
	}
}

// docText is a shorthand for the body-sized text slots documents are built from.
func docText(id, label string, x, y, w, h float64) models.CanvasObject {
	return models.CanvasObject{
		Type: models.ObjectText, ID: id, Label: label, X: x, Y: y, W: w, H: h,
		Style: models.ObjectStyle{FontSize: 16, Fill: "#1a1a1a"},
	}
}

func contractTemplate() models.Template {
	objects := []models.CanvasObject{
		{Type: models.ObjectText, Text: "VEHICLE SALES CONTRACT", X: 397, Y: 70, W: 700, H: 48,
			Style: models.ObjectStyle{FontSize: 30, Bold: true, Fill: "#1a1a1a", Align: models.AlignCenter, Origin: models.AlignCenter}},
		{Type: models.ObjectRect, X: 60, Y: 130, W: 674, H: 2, Style: models.ObjectStyle{Fill: "#1a1a1a"}},
		docText("vehicle-info", "Vehicle", 80, 180, 634, 60),
		docText("price", "Price", 80, 280, 634, 30),
		docText("party-a-info", "Seller", 80, 760, 500, 70),
		docText("party-b-info", "Buyer", 80, 880, 500, 70),
		docText("contract-date", "Contract Date", 80, 360, 400, 30),
		docText("delivery-date", "Delivery Date", 80, 410, 400, 30),
	}
	return models.Template{
		ID:       models.FormatContract,
		Name:     "Vehicle Sales Contract",
		Category: models.CategoryDocument,
		FormatID: models.FormatContract,
		Width:    794, Height: 1123,
		Background: "#ffffff",
		Objects:    objects,
		Texts: []models.TextElement{
			{ID: "vehicle-info", Label: "Vehicle", Kind: models.TextBody, X: 80, Y: 180, W: 634, H: 60},
			{ID: "price", Label: "Price", Kind: models.TextBody, X: 80, Y: 280, W: 634, H: 30},
			{ID: "party-a-info", Label: "Seller", Kind: models.TextBody, X: 80, Y: 760, W: 500, H: 70},
			{ID: "party-b-info", Label: "Buyer", Kind: models.TextBody, X: 80, Y: 880, W: 500, H: 70},
			{ID: "contract-date", Label: "Contract Date", Kind: models.TextBody, X: 80, Y: 360, W: 400, H: 30},
			{ID: "delivery-date", Label: "Delivery Date", Kind: models.TextBody, X: 80, Y: 410, W: 400, H: 30},
		},
		Images: []models.ImageElement{
			{ID: "signature-seller", Label: "Seller Signature", X: 600, Y: 760, W: 140, H: 70},
			{ID: "signature-buyer", Label: "Buyer Signature", X: 600, Y: 880, W: 140, H: 70},
		},
	}
}

func quotationTemplate() models.Template {
	objects := []models.CanvasObject{
		{Type: models.ObjectText, Text: "PRICE QUOTATION", X: 397, Y: 70, W: 700, H: 48,
			Style: models.ObjectStyle{FontSize: 30, Bold: true, Fill: "#1a1a1a", Align: models.AlignCenter, Origin: models.AlignCenter}},
		{Type: models.ObjectRect, X: 60, Y: 130, W: 674, H: 2, Style: models.ObjectStyle{Fill: "#1a1a1a"}},
		docText("vehicle-info", "Vehicle", 80, 180, 634, 60),
		docText("price-base", "Base Price", 80, 290, 500, 28),
		docText("price-option", "Options", 80, 330, 500, 28),
		docText("price-discount", "Discount", 80, 370, 500, 28),
		docText("price", "Total", 80, 430, 500, 32),
		docText("party-a-info", "Dealer", 80, 820, 500, 70),
		docText("party-b-info", "Customer", 80, 940, 500, 70),
		docText("quote-date", "Quote Date", 80, 500, 400, 28),
		docText("valid-until", "Valid Until", 80, 540, 400, 28),
	}
	return models.Template{
		ID:       models.FormatQuotation,
		Name:     "Price Quotation",
		Category: models.CategoryDocument,
		FormatID: models.FormatQuotation,
		Width:    794, Height: 1123,
		Background: "#ffffff",
		Objects:    objects,
		Texts: []models.TextElement{
			{ID: "vehicle-info", Label: "Vehicle", Kind: models.TextBody, X: 80, Y: 180, W: 634, H: 60},
			{ID: "price-base", Label: "Base Price", Kind: models.TextBody, X: 80, Y: 290, W: 500, H: 28},
			{ID: "price-option", Label: "Options", Kind: models.TextBody, X: 80, Y: 330, W: 500, H: 28},
			{ID: "price-discount", Label: "Discount", Kind: models.TextBody, X: 80, Y: 370, W: 500, H: 28},
			{ID: "price", Label: "Total", Kind: models.TextBody, X: 80, Y: 430, W: 500, H: 32},
			{ID: "party-a-info", Label: "Dealer", Kind: models.TextBody, X: 80, Y: 820, W: 500, H: 70},
			{ID: "party-b-info", Label: "Customer", Kind: models.TextBody, X: 80, Y: 940, W: 500, H: 70},
			{ID: "quote-date", Label: "Quote Date", Kind: models.TextBody, X: 80, Y: 500, W: 400, H: 28},
			{ID: "valid-until", Label: "Valid Until", Kind: models.TextBody, X: 80, Y: 540, W: 400, H: 28},
		},
		Images: []models.ImageElement{
			{ID: "signature-dealer", Label: "Dealer Signature", X: 600, Y: 820, W: 140, H: 70},
		},
	}
}

func purchaseOrderTemplate() models.Template {
	objects := []models.CanvasObject{
		{Type: models.ObjectText, Text: "VEHICLE PURCHASE ORDER", X: 397, Y: 70, W: 700, H: 48,
			Style: models.ObjectStyle{FontSize: 30, Bold: true, Fill: "#1a1a1a", Align: models.AlignCenter, Origin: models.AlignCenter}},
		{Type: models.ObjectRect, X: 60, Y: 130, W: 674, H: 2, Style: models.ObjectStyle{Fill: "#1a1a1a"}},
		docText("orderer-info", "Orderer", 80, 180, 500, 70),
		docText("supplier-info", "Supplier", 80, 290, 500, 70),
		docText("order-items", "Line Items", 80, 420, 634, 240),
		docText("price-subtotal", "Subtotal", 420, 700, 294, 28),
		docText("price-tax", "Tax", 420, 740, 294, 28),
		docText("price-shipping", "Shipping", 420, 780, 294, 28),
		docText("price", "Total", 420, 830, 294, 32),
		docText("order-date", "Order Date", 80, 700, 300, 28),
	}
	return models.Template{
		ID:       models.FormatPurchaseOrder,
		Name:     "Vehicle Purchase Order",
		Category: models.CategoryDocument,
		FormatID: models.FormatPurchaseOrder,
		Width:    794, Height: 1123,
		Background: "#ffffff",
		Objects:    objects,
		Texts: []models.TextElement{
			{ID: "orderer-info", Label: "Orderer", Kind: models.TextBody, X: 80, Y: 180, W: 500, H: 70},
			{ID: "supplier-info", Label: "Supplier", Kind: models.TextBody, X: 80, Y: 290, W: 500, H: 70},
			{ID: "order-items", Label: "Line Items", Kind: models.TextBody, X: 80, Y: 420, W: 634, H: 240},
			{ID: "price-subtotal", Label: "Subtotal", Kind: models.TextBody, X: 420, Y: 700, W: 294, H: 28},
			{ID: "price-tax", Label: "Tax", Kind: models.TextBody, X: 420, Y: 740, W: 294, H: 28},
			{ID: "price-shipping", Label: "Shipping", Kind: models.TextBody, X: 420, Y: 780, W: 294, H: 28},
			{ID: "price", Label: "Total", Kind: models.TextBody, X: 420, Y: 830, W: 294, H: 32},
			{ID: "order-date", Label: "Order Date", Kind: models.TextBody, X: 80, Y: 700, W: 300, H: 28},
		},
		Images: []models.ImageElement{
			{ID: "signature-orderer", Label: "Orderer Signature", X: 600, Y: 180, W: 140, H: 70},
		},
	}
}
