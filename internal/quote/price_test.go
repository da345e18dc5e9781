package quote

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$12.50", "12.5"},
		{"12.50", "12.5"},
		{"5", "5"},
		{"$1,234.56", "1234.56"},
		{"12,50 $ CAD", "1250"},
		{"-5", "-5"},
		{"", "0"},
		{"free", "0"},
		{"$", "0"},
	}
	for _, tc := range cases {
		if got := ParsePrice(tc.in); got.String() != tc.want {
			t.Errorf("ParsePrice(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestSubtotal(t *testing.T) {
	items := []LineItem{
		{PriceFormatted: "$10.00"},
		{Price: "5"},
	}
	if got := Subtotal(items).StringFixed(2); got != "15.00" {
		t.Errorf("subtotal: got %s, want 15.00", got)
	}
}

func TestSubtotalSkipsUnparsable(t *testing.T) {
	items := []LineItem{
		{PriceFormatted: "$10.00"},
		{PriceFormatted: "call us"},
		{},
	}
	if got := Subtotal(items).StringFixed(2); got != "10.00" {
		t.Errorf("subtotal: got %s, want 10.00", got)
	}
}

func TestSubtotalEmpty(t *testing.T) {
	if got := Subtotal(nil).StringFixed(2); got != "0.00" {
		t.Errorf("subtotal: got %s, want 0.00", got)
	}
}
