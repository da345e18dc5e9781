package quote

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// payloadKind classifies the raw cart_items value. The shapes come from three
// generations of the storefront form: the current one posts a JSON array, the
// previous one a JSON-encoded string, and the oldest a free-text block of
// three-line groups.
type payloadKind int

const (
	payloadAbsent payloadKind = iota // null, missing, or any non-array non-string value
	payloadArray
	payloadString
)

func classify(raw json.RawMessage) payloadKind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return payloadAbsent
	}
	switch trimmed[0] {
	case '[':
		return payloadArray
	case '"':
		return payloadString
	default:
		return payloadAbsent
	}
}

// LegacyDefaults supplies the quantity and price used for legacy-text groups
// whose Qty/Price lines are missing or unmatchable. The detailed and simple
// endpoints have always disagreed here ("0" vs "") and callers depend on it.
type LegacyDefaults struct {
	Quantity string
	Price    string
}

var (
	legacyQtyPattern   = regexp.MustCompile(`(?i)Qty:\s*(\d+)`)
	legacyPricePattern = regexp.MustCompile(`(?i)Price:\s*(.*)`)
)

// NormalizeCartItems turns the raw cart_items value into an ordered line-item
// slice. It never fails: every malformed payload degrades to a partial result
// or an empty slice.
func NormalizeCartItems(raw json.RawMessage, defaults LegacyDefaults) []LineItem {
	switch classify(raw) {
	case payloadArray:
		items, _ := decodeItemArray(raw)
		return items

	case payloadString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if items, ok := decodeItemArray([]byte(s)); ok {
			return items
		}
		if json.Valid([]byte(s)) {
			// Parses as JSON but not as an array (a bare number, an object):
			// nothing usable, but not legacy text either.
			return nil
		}
		return parseLegacyText(s, defaults)

	default:
		return nil
	}
}

// decodeItemArray decodes b as a JSON array of line items. Elements that are
// not objects (or have mismatched field types) decode to zero items so the
// count and order of the input are preserved. The second return is false only
// when b is not a JSON array at all.
func decodeItemArray(b []byte) ([]LineItem, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil, false
	}
	items := make([]LineItem, 0, len(elems))
	for _, e := range elems {
		var it LineItem
		_ = json.Unmarshal(e, &it)
		items = append(items, it)
	}
	return items, true
}

// parseLegacyText parses the pre-JSON cart encoding: non-blank lines in groups
// of three (title, "Qty: N", "Price: X"). A trailing partial group still
// contributes an item from whatever lines are present.
func parseLegacyText(text string, defaults LegacyDefaults) []LineItem {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var items []LineItem
	for i := 0; i < len(lines); i += 3 {
		var qtyLine, priceLine string
		if i+1 < len(lines) {
			qtyLine = lines[i+1]
		}
		if i+2 < len(lines) {
			priceLine = lines[i+2]
		}

		quantity := defaults.Quantity
		if m := legacyQtyPattern.FindStringSubmatch(qtyLine); m != nil {
			quantity = m[1]
		}
		price := defaults.Price
		if m := legacyPricePattern.FindStringSubmatch(priceLine); m != nil {
			price = strings.TrimSpace(m[1])
		}

		items = append(items, LineItem{
			Title:          FlexString(lines[i]),
			Quantity:       FlexString(quantity),
			PriceFormatted: FlexString(price),
		})
	}
	return items
}
