package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Toman is the display unit of Iranian markets.
	Toman = "IRT"
	// Rial is the sub-unit some exchanges quote in. 1 IRT = 10 RLS.
	Rial = "RLS"
)

var rialsPerToman = decimal.NewFromInt(10)

// IsTomanMarket reports whether a canonical or concatenated symbol is quoted
// in Toman.
func IsTomanMarket(symbol string) bool {
	return strings.HasSuffix(strings.ToUpper(symbol), Toman)
}

// IsRialMarket reports whether an exchange market code such as "BTC-RLS" is
// natively quoted in Rial.
func IsRialMarket(market string) bool {
	return strings.HasSuffix(strings.ToUpper(market), "-"+Rial)
}

func RialToToman(d decimal.Decimal) decimal.Decimal {
	return d.Div(rialsPerToman)
}

// ScaleForMarket divides d by 10 when symbol is a Toman market whose exchange
// reports values in Rial.
func ScaleForMarket(symbol string, d decimal.Decimal) decimal.Decimal {
	if IsTomanMarket(symbol) {
		return RialToToman(d)
	}
	return d
}

// RialCurrency maps a canonical quote to what Rial based exchanges accept.
func RialCurrency(quote string) string {
	if quote == Toman {
		return Rial
	}
	return quote
}

// DisplayMarket rewrites a Rial market code to its Toman display form.
// Example: "BTC-RLS" -> "BTC-IRT".
func DisplayMarket(market string) string {
	if !IsRialMarket(market) {
		return market
	}
	return market[:len(market)-len(Rial)] + Toman
}
