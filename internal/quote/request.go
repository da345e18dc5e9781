package quote

import "encoding/json"

// Request is the decoded quote-request form. Only Name and Email are
// required; everything else is optional and rendered as supplied. CartItems
// stays raw until normalization because its shape varies by storefront
// generation (array, JSON string, or legacy text).
type Request struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	InvoiceContact    string `json:"invoice_contact"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostalCode        string `json:"postal_code"`
	Country           string `json:"country"`
	Location          string `json:"location"`
	PreferredContact  string `json:"preferred_contact"`
	PreferredDelivery string `json:"preferred_delivery"`
	Notes             string `json:"notes"`

	CartItems json.RawMessage `json:"cart_items"`

	// Language selects the built-in string table: "fr" for French, anything
	// else for English.
	Language string `json:"language"`

	// Per-field label overrides, honored on the detailed endpoint only.
	LabelName           string `json:"label_name"`
	LabelEmail          string `json:"label_email"`
	LabelInvoiceContact string `json:"label_invoice_contact"`
	LabelStreet         string `json:"label_street"`
	LabelCity           string `json:"label_city"`
	LabelProvince       string `json:"label_province"`
	LabelPostalCode     string `json:"label_postal_code"`
	LabelCountry        string `json:"label_country"`
	LabelLocation       string `json:"label_location"`
	LabelContact        string `json:"label_contact"`
	LabelDelivery       string `json:"label_delivery"`
	LabelNotes          string `json:"label_notes"`
}

// labelOverrides collects the caller-supplied label fields into a lookup map.
// Empty values are kept out so the fallback in fieldLabel applies.
func (r Request) labelOverrides() map[LabelID]string {
	fields := map[LabelID]string{
		LabelName:           r.LabelName,
		LabelEmail:          r.LabelEmail,
		LabelInvoiceContact: r.LabelInvoiceContact,
		LabelStreet:         r.LabelStreet,
		LabelCity:           r.LabelCity,
		LabelProvince:       r.LabelProvince,
		LabelPostalCode:     r.LabelPostalCode,
		LabelCountry:        r.LabelCountry,
		LabelLocation:       r.LabelLocation,
		LabelContact:        r.LabelContact,
		LabelDelivery:       r.LabelDelivery,
		LabelNotes:          r.LabelNotes,
	}
	overrides := make(map[LabelID]string, len(fields))
	for id, v := range fields {
		if v != "" {
			overrides[id] = v
		}
	}
	return overrides
}

// Options parameterizes the pipeline. The detailed and simple endpoints share
// everything except the three knobs below.
type Options struct {
	// IncludeSubtotal adds price aggregation: a subtotal row under the items
	// table and a numeric fallback for items without a formatted price.
	IncludeSubtotal bool

	// AllowLabelOverrides honors the caller's label_* fields for the
	// customer-details block.
	AllowLabelOverrides bool

	// LegacyDefaults fills missing quantity/price lines in legacy-text carts.
	LegacyDefaults LegacyDefaults
}

// Detailed is the option set of the primary quote endpoint.
var Detailed = Options{
	IncludeSubtotal:     true,
	AllowLabelOverrides: true,
	LegacyDefaults:      LegacyDefaults{Quantity: "0", Price: "0"},
}

// Simple is the option set of the lightweight endpoint: no aggregation, no
// override plumbing, and empty-string legacy defaults.
var Simple = Options{
	IncludeSubtotal:     false,
	AllowLabelOverrides: false,
	LegacyDefaults:      LegacyDefaults{Quantity: "", Price: ""},
}
