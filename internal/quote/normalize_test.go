package quote

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeArrayPreservesCountAndOrder(t *testing.T) {
	raw := json.RawMessage(`[
		{"title":"Alpha","quantity":1,"price_formatted":"$1.00"},
		{"title":"Beta","quantity":2,"price_formatted":"$2.00"},
		{"title":"Gamma","quantity":3,"price_formatted":"$3.00"}
	]`)

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		if got := items[i].DisplayTitle(); got != want {
			t.Errorf("item %d: title %q, want %q", i, got, want)
		}
	}
}

func TestNormalizeJSONStringRoundTrips(t *testing.T) {
	original := []LineItem{
		{Title: "Alpha", Quantity: "1", PriceFormatted: "$1.00"},
		{Title: "Beta", Variant: "Large", Quantity: "2", PriceFormatted: "$2.00"},
	}
	inner, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	// cart_items arrives as a JSON *string* containing the array.
	raw, err := json.Marshal(string(inner))
	if err != nil {
		t.Fatal(err)
	}

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if !reflect.DeepEqual(items, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", items, original)
	}
}

func TestNormalizeLegacyThreeLineGroup(t *testing.T) {
	raw, _ := json.Marshal("Widget\nQty: 4\nPrice: $9.99")

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.DisplayTitle() != "Widget" {
		t.Errorf("title: got %q", it.DisplayTitle())
	}
	if it.QuantityValue() != 4 {
		t.Errorf("quantity: got %v", it.QuantityValue())
	}
	if it.RawPrice() != "$9.99" {
		t.Errorf("price: got %q", it.RawPrice())
	}
}

func TestNormalizeLegacyBlankLinesAndCase(t *testing.T) {
	raw, _ := json.Marshal("\n  Widget  \n\n qty: 7 \n\nPRICE:   $3.50  \n")

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].QuantityValue() != 7 {
		t.Errorf("quantity: got %v", items[0].QuantityValue())
	}
	if items[0].RawPrice() != "$3.50" {
		t.Errorf("price: got %q", items[0].RawPrice())
	}
}

func TestNormalizeLegacyTrailingPartialGroup(t *testing.T) {
	raw, _ := json.Marshal("Widget\nQty: 4\nPrice: $9.99\nGadget\nQty: 2")

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	second := items[1]
	if second.DisplayTitle() != "Gadget" {
		t.Errorf("title: got %q", second.DisplayTitle())
	}
	if second.QuantityValue() != 2 {
		t.Errorf("quantity: got %v", second.QuantityValue())
	}
	// Missing price line falls to the detailed default.
	if second.RawPrice() != "0" {
		t.Errorf("price: got %q, want %q", second.RawPrice(), "0")
	}
}

func TestNormalizeLegacyDefaultsDivergeByVariant(t *testing.T) {
	raw, _ := json.Marshal("Widget\nsomething else\nanother line")

	detailed := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(detailed) != 1 {
		t.Fatalf("detailed: expected 1 item, got %d", len(detailed))
	}
	if detailed[0].Quantity != "0" || detailed[0].PriceFormatted != "0" {
		t.Errorf("detailed defaults: got qty %q price %q, want \"0\"/\"0\"",
			detailed[0].Quantity, detailed[0].PriceFormatted)
	}

	simple := NormalizeCartItems(raw, Simple.LegacyDefaults)
	if len(simple) != 1 {
		t.Fatalf("simple: expected 1 item, got %d", len(simple))
	}
	if simple[0].Quantity != "" || simple[0].PriceFormatted != "" {
		t.Errorf("simple defaults: got qty %q price %q, want empty",
			simple[0].Quantity, simple[0].PriceFormatted)
	}
}

func TestNormalizeNonArrayNonStringYieldsEmpty(t *testing.T) {
	cases := map[string]string{
		"null":    `null`,
		"number":  `42`,
		"object":  `{"title":"Widget"}`,
		"bool":    `true`,
		"missing": ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			items := NormalizeCartItems(json.RawMessage(raw), Detailed.LegacyDefaults)
			if len(items) != 0 {
				t.Errorf("expected empty, got %d items", len(items))
			}
		})
	}
}

func TestNormalizeJSONStringNonArrayYieldsEmpty(t *testing.T) {
	for _, inner := range []string{`5`, `{"title":"Widget"}`, `"nested"`} {
		raw, _ := json.Marshal(inner)
		items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
		if len(items) != 0 {
			t.Errorf("%s: expected empty, got %d items", inner, len(items))
		}
	}
}

func TestNormalizeBlankStringYieldsEmpty(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t "} {
		raw, _ := json.Marshal(s)
		if items := NormalizeCartItems(raw, Detailed.LegacyDefaults); len(items) != 0 {
			t.Errorf("%q: expected empty, got %d items", s, len(items))
		}
	}
}

func TestNormalizeArrayWithMalformedElements(t *testing.T) {
	// Non-object elements decode to zero items; count and order survive.
	raw := json.RawMessage(`[{"title":"Alpha"}, 7, "stray", {"title":"Beta"}]`)

	items := NormalizeCartItems(raw, Detailed.LegacyDefaults)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].DisplayTitle() != "Alpha" || items[3].DisplayTitle() != "Beta" {
		t.Errorf("order not preserved: %+v", items)
	}
}

func TestLineItemFlexibleScalars(t *testing.T) {
	var it LineItem
	err := json.Unmarshal([]byte(`{
		"title": 99,
		"variant": null,
		"quantity": "12",
		"price_formatted": 10.5
	}`), &it)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.DisplayTitle() != "99" {
		t.Errorf("title: got %q", it.DisplayTitle())
	}
	if it.DisplayVariant() != "" {
		t.Errorf("variant: got %q, want empty", it.DisplayVariant())
	}
	if it.QuantityValue() != 12 {
		t.Errorf("quantity: got %v", it.QuantityValue())
	}
	if it.RawPrice() != "10.5" {
		t.Errorf("price: got %q", it.RawPrice())
	}
}

func TestLineItemAliases(t *testing.T) {
	it := LineItem{Name: "Fallback", Price: "8"}
	if it.DisplayTitle() != "Fallback" {
		t.Errorf("title alias: got %q", it.DisplayTitle())
	}
	if it.RawPrice() != "8" {
		t.Errorf("price alias: got %q", it.RawPrice())
	}

	it = LineItem{Title: "Main", Name: "Fallback", PriceFormatted: "$1", FormattedPrice: "$2", Price: "$3"}
	if it.DisplayTitle() != "Main" {
		t.Errorf("title precedence: got %q", it.DisplayTitle())
	}
	if it.RawPrice() != "$1" {
		t.Errorf("price precedence: got %q", it.RawPrice())
	}
}

func TestDisplayVariantLiteralNull(t *testing.T) {
	it := LineItem{Variant: "null"}
	if it.DisplayVariant() != "" {
		t.Errorf("literal \"null\" variant should read as absent, got %q", it.DisplayVariant())
	}
	it.Variant = "Large"
	if it.DisplayVariant() != "Large" {
		t.Errorf("variant: got %q", it.DisplayVariant())
	}
}
