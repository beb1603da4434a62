package domain

import "fmt"

// ReferenceCurrency is the currency all exchange rates are expressed against.
// A rate table entry rate[X] means "units of X per one ReferenceCurrency".
const ReferenceCurrency = "EUR"

// Currencies is the fixed set of supported currency codes mapped to their
// display names. Conversion works for any code present in the rate table, but
// UI pickers are limited to this set.
var Currencies = map[string]string{
	"EUR": "Euro",
	"USD": "US Dollar",
	"GBP": "British Pound",
	"ZAR": "South African Rand",
	"LKR": "Sri Lankan Rupee",
	"JPY": "Japanese Yen",
	"AUD": "Australian Dollar",
}

// DefaultRates is the static fallback rate table used until (and whenever) a
// live rate fetch succeeds. Values are units per EUR.
var DefaultRates = map[string]float64{
	"EUR": 1,
	"USD": 1.08,
	"GBP": 0.85,
	"ZAR": 20.5,
	"LKR": 330,
	"JPY": 160,
	"AUD": 1.65,
}

// currencySymbols backs FormatCost. Codes missing here fall back to the plain
// "CODE amount" rendering.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"ZAR": "R",
}

// Cost is a monetary amount in a specific currency.
// The zero value (0, "") contributes nothing to totals.
type Cost struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Convert converts amount from one currency to another using the given rate
// table, routing through the reference currency.
//
// A missing rate is treated as 1 (identity), never 0 or NaN, so a partially
// populated table degrades to pass-through rather than corrupting totals.
func Convert(amount float64, from, to string, rates map[string]float64) float64 {
	if from == to {
		return amount
	}
	inRef := amount / rateOrOne(rates, from)
	return inRef * rateOrOne(rates, to)
}

// ConvertCost converts a Cost into the target currency. A nil cost is zero.
func ConvertCost(c *Cost, to string, rates map[string]float64) float64 {
	if c == nil {
		return 0
	}
	return Convert(c.Amount, c.Currency, to, rates)
}

// FormatCost renders an amount with its currency symbol, e.g. "€1,234.56".
// Unknown codes fall back to "CODE 1234.56" rather than failing.
func FormatCost(amount float64, currency string) string {
	sym, ok := currencySymbols[currency]
	if !ok {
		return fmt.Sprintf("%s %.2f", currency, amount)
	}
	if currency == "JPY" {
		// yen has no minor unit
		return fmt.Sprintf("%s%s", sym, groupThousands(fmt.Sprintf("%.0f", amount)))
	}
	s := fmt.Sprintf("%.2f", amount)
	return sym + groupThousands(s[:len(s)-3]) + s[len(s)-3:]
}

func rateOrOne(rates map[string]float64, code string) float64 {
	if r, ok := rates[code]; ok && r != 0 {
		return r
	}
	return 1
}

// groupThousands inserts comma separators into a plain integer string.
// Handles a leading minus sign; fractional parts must be stripped by callers.
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
