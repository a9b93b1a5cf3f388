// Package normalizer converts between canonical hyphenated symbols and the
// native symbols each exchange expects, and rescales Rial quoted values to
// Toman.
package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrUnknownQuote  = errors.New("unknown quote currency")
)

// QuoteCurrencies is scanned in order; the first suffix that matches wins.
var QuoteCurrencies = []string{"IRT", "USDT", "BTC", "ETH"}

var separators = strings.NewReplacer("-", "", "_", "", " ", "", ".", "")

// ToHyphenated turns any native symbol into BASE-QUOTE.
// Example: "BTCIRT" -> "BTC-IRT", "eth_usdt" -> "ETH-USDT".
func ToHyphenated(native string) (string, error) {
	letters := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, native))

	for _, quote := range QuoteCurrencies {
		if strings.HasSuffix(letters, quote) {
			base := strings.TrimSuffix(letters, quote)
			if base == "" {
				break
			}
			return base + "-" + quote, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuote, native)
}

// ToConcatenated drops separator characters and keeps everything else as is.
// Example: "BTC-IRT" -> "BTCIRT", "btc_irt" -> "btcirt".
func ToConcatenated(symbol string) string {
	return separators.Replace(symbol)
}

// Explode splits a hyphenated symbol into its base and quote.
func Explode(symbol string) (base, quote string, err error) {
	parts := strings.Split(symbol, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q, expected BASE-QUOTE", ErrInvalidSymbol, symbol)
	}
	return parts[0], parts[1], nil
}

// SymbolRule renames a canonical quote currency on one exchange.
type SymbolRule struct {
	// Quote is the canonical quote currency (e.g. "IRT").
	Quote string

	// Native is what the exchange calls it (e.g. "TMN").
	Native string
}

// Dialect describes how an exchange spells market symbols.
type Dialect struct {
	Separator string
	Rules     []SymbolRule
}

// Dialects maps exchange names to their symbol dialect.
// Add new exchanges here when implementing new drivers.
var Dialects = map[string]Dialect{
	"nobitex": {},
	"wallex": {
		Rules: []SymbolRule{{Quote: "IRT", Native: "TMN"}}, // Wallex uses TMN for Toman
	},
	"bitpin": {Separator: "_"},
}

// ToNative converts a canonical symbol to the exchange's spelling.
// Example: ToNative("wallex", "BTC-IRT") -> "BTCTMN".
func ToNative(exchange, symbol string) (string, error) {
	base, quote, err := Explode(strings.ToUpper(symbol))
	if err != nil {
		return "", err
	}
	d := Dialects[exchange]
	for _, rule := range d.Rules {
		if rule.Quote == quote {
			quote = rule.Native
			break
		}
	}
	return base + d.Separator + quote, nil
}

// FromNative converts an exchange symbol to canonical form.
// Example: FromNative("wallex", "BTCTMN") -> "BTC-IRT".
func FromNative(exchange, native string) (string, error) {
	for _, rule := range Dialects[exchange].Rules {
		if strings.HasSuffix(native, rule.Native) {
			native = strings.TrimSuffix(native, rule.Native) + rule.Quote
			break
		}
	}
	return ToHyphenated(native)
}
