// Wire shapes of the Bitpin REST API.
// API Doc: https://docs.bitpin.ir/v1/docs
//
// Bitpin separates base and quote with an underscore (BTC_IRT) and quotes
// Toman directly, so values are never rescaled. Error bodies do not always
// carry a message field.
package bitpin

import (
	"github.com/shopspring/decimal"
)

//	[{"symbol":"BTC_IRT","price":"4100000000","daily_change_price":1.2,"timestamp":1736973000.1}]
type tickerWire struct {
	Symbol string              `json:"symbol"`
	Price  decimal.NullDecimal `json:"price"`
}

//	[{"id":"c5e4d8","price":"4100000000","base_amount":"0.001","quote_amount":"4100000","side":"buy","time":1736973000.123}]
type matchWire struct {
	ID          string              `json:"id"`
	Price       decimal.NullDecimal `json:"price"`
	BaseAmount  decimal.NullDecimal `json:"base_amount"`
	QuoteAmount decimal.NullDecimal `json:"quote_amount"`
	Side        string              `json:"side"`
	Time        decimal.NullDecimal `json:"time"`
}

//	{"asks":[["4110000000","0.01"]],"bids":[["4100000000","0.2"]]}
type orderBookResponse struct {
	Asks *[][]decimal.Decimal `json:"asks"`
	Bids *[][]decimal.Decimal `json:"bids"`
}

// There is no doc for the bars API; it is used by the Bitpin web chart.
//
//	[{"open":7880000000.0,"close":7997908007.0,"low":"7794557593","high":"8050000000.0",
//	  "volume":"1.087160998021016446803192218","ts":1736886600.0,"resolution":"1d"}]
type barWire struct {
	Timestamp decimal.NullDecimal `json:"ts"`
	Open      decimal.NullDecimal `json:"open"`
	High      decimal.NullDecimal `json:"high"`
	Low       decimal.NullDecimal `json:"low"`
	Close     decimal.NullDecimal `json:"close"`
	Volume    decimal.NullDecimal `json:"volume"`
}
