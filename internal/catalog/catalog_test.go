// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"testing"

	"brandstudio/internal/models"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, id := range []string{
		"banner-hero-default",
		models.FormatBannerVertical,
		models.FormatBannerSquare,
		models.FormatContract,
		models.FormatQuotation,
		models.FormatPurchaseOrder,
		"brochure-trifold",
	} {
		if c.ByID(id) == nil {
			t.Errorf("template %q missing from default catalog", id)
		}
	}
}

func TestByIDUnknown(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ByID("no-such-template"); got != nil {
		t.Errorf("unknown id returned %v", got)
	}
}

func TestByFormatGroup(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	variants := c.ByFormatGroup("banner-hero")
	if len(variants) != 4 {
		t.Fatalf("banner-hero has %d variants, want 4", len(variants))
	}
	seen := make(map[models.LayoutVariant]bool)
	for _, v := range variants {
		seen[v.Variant] = true
	}
	for _, want := range []models.LayoutVariant{models.VariantDefault, models.VariantBottomLeft, models.VariantCenter, models.VariantRight} {
		if !seen[want] {
			t.Errorf("variant %q missing from banner-hero group", want)
		}
	}

	if got := c.ByFormatGroup("nope"); got != nil {
		t.Errorf("unknown group returned %v", got)
	}
}

func TestUniqueByCategoryCollapsesGroups(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	banners := c.UniqueByCategory(models.CategoryBanner)

	groups := make(map[string]int)
	for _, tmpl := range banners {
		groups[tmpl.FormatGroup]++
	}
	for g, n := range groups {
		if n > 1 {
			t.Errorf("group %q appears %d times, want 1", g, n)
		}
	}
}

func TestUniqueByCategoryPrefersDefaultVariant(t *testing.T) {
	templates := []models.Template{
		{ID: "g-right", Category: models.CategoryBanner, FormatGroup: "g", Variant: models.VariantRight, Width: 10, Height: 10},
		{ID: "g-default", Category: models.CategoryBanner, FormatGroup: "g", Variant: models.VariantDefault, Width: 10, Height: 10},
	}
	c, err := New(templates)
	if err != nil {
		t.Fatal(err)
	}
	got := c.UniqueByCategory(models.CategoryBanner)
	if len(got) != 1 || got[0].ID != "g-default" {
		t.Errorf("representative = %v, want g-default", got)
	}
}

func TestNewRejectsInvalidCanvas(t *testing.T) {
	_, err := New([]models.Template{{ID: "bad", Width: 0, Height: 100}})
	if err == nil {
		t.Fatal("zero-width template accepted")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	templates := []models.Template{
		{ID: "dup", Width: 10, Height: 10},
		{ID: "dup", Width: 10, Height: 10},
	}
	if _, err := New(templates); err == nil {
		t.Fatal("duplicate ids accepted")
	}
}

func TestDocumentTemplatesCarrySignatureSlots(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	contract := c.ByID(models.FormatContract)
	if contract.ImageByID("signature-seller") == nil || contract.ImageByID("signature-buyer") == nil {
		t.Error("contract template missing signature slots")
	}
	po := c.ByID(models.FormatPurchaseOrder)
	if po.ImageByID("signature-orderer") == nil {
		t.Error("purchase order template missing orderer signature slot")
	}
}
