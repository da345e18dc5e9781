package quote

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var nonPriceRunes = regexp.MustCompile(`[^0-9.\-]+`)

// ParsePrice extracts a numeric value from a human-readable price token such
// as "$12.50" or "12,50 $ CAD". Everything outside digits, period, and minus
// is stripped before parsing; anything still unparsable yields zero. This is
// a best-effort accumulator, not a currency-safe parser — thousands
// separators and currency symbols are discarded by design of the form.
func ParsePrice(s string) decimal.Decimal {
	cleaned := nonPriceRunes.ReplaceAllString(s, "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Subtotal sums the parsed effective price of every item.
func Subtotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ParsePrice(it.RawPrice()))
	}
	return total
}
