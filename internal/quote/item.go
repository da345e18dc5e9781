// Package quote implements the quote-request pipeline: cart-items
// normalization, bilingual HTML rendering, and dual email dispatch.
package quote

import (
	"encoding/json"
	"strconv"
)

// FlexString is a JSON scalar that storefront payloads send inconsistently as
// a string, a number, or null. Anything else (object, array, bool) decodes to
// the empty string rather than failing — line-item decoding must never error.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// LineItem is one normalized cart entry. The duplicate title and price fields
// mirror the aliases different storefront versions have used for the same
// values; DisplayTitle and RawPrice resolve them.
type LineItem struct {
	Title          FlexString `json:"title"`
	Name           FlexString `json:"name"`
	Variant        FlexString `json:"variant"`
	Quantity       FlexString `json:"quantity"`
	PriceFormatted FlexString `json:"price_formatted"`
	FormattedPrice FlexString `json:"formatted_price"`
	Price          FlexString `json:"price"`
}

// DisplayTitle returns the first non-empty of title and name.
func (it LineItem) DisplayTitle() string {
	if it.Title != "" {
		return string(it.Title)
	}
	return string(it.Name)
}

// DisplayVariant returns the variant, treating the literal string "null" as
// absent. Older storefront scripts serialized a missing variant that way.
func (it LineItem) DisplayVariant() string {
	if it.Variant == "" || it.Variant == "null" {
		return ""
	}
	return string(it.Variant)
}

// RawPrice returns the first non-empty of the price field aliases.
func (it LineItem) RawPrice() string {
	if it.PriceFormatted != "" {
		return string(it.PriceFormatted)
	}
	if it.FormattedPrice != "" {
		return string(it.FormattedPrice)
	}
	return string(it.Price)
}

// QuantityValue parses the quantity as a number, defaulting to 0.
func (it LineItem) QuantityValue() float64 {
	n, err := strconv.ParseFloat(string(it.Quantity), 64)
	if err != nil {
		return 0
	}
	return n
}
