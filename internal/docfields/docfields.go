// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docfields maps document data bundles (contract, quotation,
// purchase order) to the text shown at each named placeholder, including
// computed totals. The layout resolver consults this package instead of
// the generic value store for any placeholder a bundle knows about.
package docfields

import (
	"fmt"
	"strings"
	"time"

	"brandstudio/internal/models"
)

// Missing is substituted for any scalar field the bundle does not carry.
const Missing = "_____"

// TaxRate is the fixed purchase-order tax fraction.
const TaxRate = 0.10

// Offset perturbs a placeholder vertically relative to its template
// position. The values are calibration data tuned against the shipped
// document templates; treat them as opaque, not as a formula.
type Offset struct {
	DY float64
}

// verticalOffsets holds the per-document-type placeholder offset tables.
var verticalOffsets = map[models.DocumentKind]map[string]Offset{
	models.DocumentContract: {
		"vehicle-info":  {DY: -50},
		"price":         {DY: 140},
		"party-a-info":  {DY: 170},
		"party-b-info":  {DY: 170},
		"contract-date": {DY: 120},
		"delivery-date": {DY: 120},
	},
	models.DocumentQuotation: {
		"vehicle-info":   {DY: -30},
		"price-base":     {DY: 60},
		"price-option":   {DY: 60},
		"price-discount": {DY: 60},
		"price":          {DY: 90},
		"party-a-info":   {DY: 110},
		"party-b-info":   {DY: 110},
		"quote-date":     {DY: 80},
		"valid-until":    {DY: 80},
	},
	models.DocumentPurchaseOrder: {
		"orderer-info":   {DY: -20},
		"supplier-info":  {DY: -20},
		"order-items":    {DY: 30},
		"price-subtotal": {DY: 40},
		"price-tax":      {DY: 40},
		"price-shipping": {DY: 40},
		"price":          {DY: 70},
		"order-date":     {DY: 40},
	},
}

// signatureOffsets positions signature image overlays relative to the
// resolved position of their anchor text placeholder. Same calibration
// caveat as verticalOffsets.
var signatureOffsets = map[string]struct {
	Anchor string
	DX, DY float64
}{
	"signature-seller":  {Anchor: "party-a-info", DX: 520, DY: -10},
	"signature-buyer":   {Anchor: "party-b-info", DX: 520, DY: -10},
	"signature-dealer":  {Anchor: "party-a-info", DX: 520, DY: -10},
	"signature-orderer": {Anchor: "orderer-info", DX: 520, DY: 10},
}

// VerticalOffset returns the calibrated vertical shift for a placeholder
// under the given document kind. Unknown ids shift by zero.
func VerticalOffset(kind models.DocumentKind, placeholderID string) float64 {
	if table, ok := verticalOffsets[kind]; ok {
		return table[placeholderID].DY
	}
	return 0
}

// SignatureAnchor returns the anchor placeholder id and pixel offset for a
// signature overlay id. The second return is false for non-signature ids.
func SignatureAnchor(id string) (anchor string, dx, dy float64, ok bool) {
	s, ok := signatureOffsets[id]
	if !ok {
		return "", 0, 0, false
	}
	return s.Anchor, s.DX, s.DY, true
}

// Preformatted reports whether a placeholder renders as a fixed-width
// block whose manual column padding must be preserved.
func Preformatted(placeholderID string) bool {
	return placeholderID == "order-items"
}

// Handles reports whether the bundle supplies text for the placeholder id.
// The resolver uses this to bypass the generic value store.
func Handles(bundle *models.DocumentBundle, placeholderID string) bool {
	if bundle == nil {
		return false
	}
	table, ok := verticalOffsets[bundle.Kind]
	if !ok {
		return false
	}
	_, ok = table[placeholderID]
	return ok
}

// FieldText resolves the display text for one placeholder from the active
// bundle. Missing scalars come back as the underscore placeholder; only
// ids the bundle genuinely leaves empty return "".
func FieldText(bundle *models.DocumentBundle, placeholderID string) string {
	if bundle == nil {
		return ""
	}
	switch bundle.Kind {
	case models.DocumentContract:
		return contractField(bundle.Contract, placeholderID)
	case models.DocumentQuotation:
		return quotationField(bundle.Quotation, placeholderID)
	case models.DocumentPurchaseOrder:
		return purchaseOrderField(bundle.PurchaseOrder, placeholderID)
	}
	return ""
}

func contractField(c *models.Contract, id string) string {
	if c == nil {
		return Missing
	}
	switch id {
	case "vehicle-info":
		return fmt.Sprintf("Model: %s   Color: %s   VIN: %s",
			orMissing(c.Model), orMissing(c.Color), orMissing(c.VIN))
	case "price":
		return "Total Price: " + FormatAmount(c.Price) + " KRW"
	case "party-a-info":
		return partyLines("Seller", c.Seller)
	case "party-b-info":
		return partyLines("Buyer", c.Buyer)
	case "contract-date":
		return "Contract Date: " + FormatDate(c.ContractDate)
	case "delivery-date":
		return "Delivery Date: " + FormatDate(c.DeliveryDate)
	}
	return ""
}

func quotationField(q *models.Quotation, id string) string {
	if q == nil {
		return Missing
	}
	switch id {
	case "vehicle-info":
		parts := []string{"Model: " + orMissing(q.Model)}
		if q.Trim != "" {
			parts = append(parts, "Trim: "+q.Trim)
		}
		if q.Color != "" {
			parts = append(parts, "Color: "+q.Color)
		}
		return strings.Join(parts, "   ")
	case "price-base":
		return "Base Price: " + FormatAmount(q.BasePrice)
	case "price-option":
		// Optional rows resolve empty so the layout can drop them.
		if q.OptionPrice == 0 {
			return ""
		}
		return "Options: " + FormatAmount(q.OptionPrice)
	case "price-discount":
		if q.Discount == 0 {
			return ""
		}
		return "Discount: -" + FormatAmount(q.Discount)
	case "price":
		return "Quoted Total: " + FormatAmount(q.BasePrice+q.OptionPrice-q.Discount) + " KRW"
	case "party-a-info":
		return partyLines("Dealer", q.Dealer)
	case "party-b-info":
		return partyLines("Customer", q.Customer)
	case "quote-date":
		return "Quote Date: " + FormatDate(q.QuoteDate)
	case "valid-until":
		if q.ValidUntil == "" {
			return ""
		}
		return "Valid Until: " + FormatDate(q.ValidUntil)
	}
	return ""
}

func purchaseOrderField(po *models.PurchaseOrder, id string) string {
	if po == nil {
		return Missing
	}
	t := Totals(po)
	switch id {
	case "orderer-info":
		return partyLines("Orderer", po.Orderer)
	case "supplier-info":
		return partyLines("Supplier", po.Supplier)
	case "order-items":
		return LineItemBlock(po.Items)
	case "price-subtotal":
		return "Subtotal: " + FormatAmount(t.Subtotal)
	case "price-tax":
		return "Tax (10%): " + FormatAmount(t.Tax)
	case "price-shipping":
		if po.Shipping == 0 {
			return ""
		}
		return "Shipping: " + FormatAmount(po.Shipping)
	case "price":
		return "Grand Total: " + FormatAmount(t.Total) + " KRW"
	case "order-date":
		return "Order Date: " + FormatDate(po.OrderDate)
	}
	return ""
}

// partyLines renders a contracting party as a short multi-line block.
// Scalar gaps become underscores rather than collapsing the line.
func partyLines(role string, p models.Party) string {
	lines := []string{role + ": " + orMissing(p.Name)}
	if p.RegNo != "" {
		lines = append(lines, "Reg. No: "+p.RegNo)
	}
	if p.Address != "" {
		lines = append(lines, "Address: "+p.Address)
	}
	if p.Phone != "" {
		lines = append(lines, "Tel: "+p.Phone)
	}
	return strings.Join(lines, "\n")
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return Missing
	}
	return s
}

// FormatDate renders an RFC 3339 date (or bare YYYY-MM-DD) in the fixed
// human-readable document form. Empty or unparseable input renders as the
// underscore placeholder instead of erroring.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return Missing
	}
	return fmt.Sprintf("%d Year %d Month %d Day", t.Year(), int(t.Month()), t.Day())
}

// FormatAmount renders an integer amount with thousands separators.
func FormatAmount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// OrderTotals holds the derived purchase-order figures.
type OrderTotals struct {
	Subtotal int64
	Tax      int64
	Total    int64
}

// Totals computes subtotal, fixed-rate tax, and grand total (including
// shipping) for a purchase order.
func Totals(po *models.PurchaseOrder) OrderTotals {
	var t OrderTotals
	if po == nil {
		return t
	}
	for _, it := range po.Items {
		t.Subtotal += int64(it.Quantity) * it.UnitPrice
	}
	t.Tax = int64(float64(t.Subtotal) * TaxRate)
	t.Total = t.Subtotal + t.Tax + po.Shipping
	return t
}

// LineItemBlock renders purchase-order line items as a preformatted
// fixed-width block with manual column padding. The target is a flattened
// raster, so a true table layout buys nothing here.
func LineItemBlock(items []models.LineItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-24s %-12s %5s %16s %16s\n", "Model", "Color", "Qty", "Unit Price", "Amount")
	b.WriteString(strings.Repeat("-", 78))
	for _, it := range items {
		amount := int64(it.Quantity) * it.UnitPrice
		fmt.Fprintf(&b, "\n%-24s %-12s %5d %16s %16s",
			it.Model, it.Color, it.Quantity, FormatAmount(it.UnitPrice), FormatAmount(amount))
	}
	return b.String()
}
