// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DocumentKind selects which flat data bundle drives a Document-category
// template.
type DocumentKind string

const (
	DocumentContract      DocumentKind = "contract"
	DocumentQuotation     DocumentKind = "quotation"
	DocumentPurchaseOrder DocumentKind = "purchase-order"
)

// Party is one contracting party on a document.
type Party struct {
	Name    string `json:"name"`
	RegNo   string `json:"reg_no,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Contract holds the vehicle sales contract fields.
type Contract struct {
	VIN          string `json:"vin"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	Price        int64  `json:"price"`
	Seller       Party  `json:"seller"`
	Buyer        Party  `json:"buyer"`
	ContractDate string `json:"contract_date"` // RFC 3339 date or empty
	DeliveryDate string `json:"delivery_date"`
}

// Quotation holds the price quotation fields.
type Quotation struct {
	Model       string `json:"model"`
	Trim        string `json:"trim,omitempty"`
	Color       string `json:"color,omitempty"`
	BasePrice   int64  `json:"base_price"`
	OptionPrice int64  `json:"option_price,omitempty"`
	Discount    int64  `json:"discount,omitempty"`
	Dealer      Party  `json:"dealer"`
	Customer    Party  `json:"customer"`
	QuoteDate   string `json:"quote_date"`
	ValidUntil  string `json:"valid_until,omitempty"`
}

// LineItem is one ordered vehicle row on a purchase order.
type LineItem struct {
	Model     string `json:"model"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// PurchaseOrder holds the fleet purchase-order fields. Totals are derived,
// never stored.
type PurchaseOrder struct {
	Orderer   Party      `json:"orderer"`
	Supplier  Party      `json:"supplier"`
	Items     []LineItem `json:"items"`
	Shipping  int64      `json:"shipping"`
	OrderDate string     `json:"order_date"`
}

// DocumentBundle carries the active document data for one render. Exactly
// the field matching Kind is non-nil; the others are ignored.
type DocumentBundle struct {
	Kind          DocumentKind   `json:"kind"`
	Contract      *Contract      `json:"contract,omitempty"`
	Quotation     *Quotation     `json:"quotation,omitempty"`
	PurchaseOrder *PurchaseOrder `json:"purchase_order,omitempty"`
}
