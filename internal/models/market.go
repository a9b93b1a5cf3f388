package models

// Prices maps hyphenated symbols to their last price.
type Prices map[string]string

type Trade struct {
	Time   string    `json:"time"`
	Price  string    `json:"price"`
	Volume string    `json:"volume"`
	Side   OrderSide `json:"side"`
}

// Level is one price level of an order book.
type Level struct {
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type OrderBook struct {
	Symbol string  `json:"symbol"`
	Bids   []Level `json:"bids"`
	Asks   []Level `json:"asks"`
}

// Ticker holds 24h market statistics. IsClosed, DayChange and VolumeSrc are
// never rescaled.
type Ticker struct {
	Symbol    string `json:"symbol"`
	IsClosed  bool   `json:"is_closed"`
	BestBuy   string `json:"best_buy"`
	BestSell  string `json:"best_sell"`
	Latest    string `json:"latest"`
	DayOpen   string `json:"day_open"`
	DayHigh   string `json:"day_high"`
	DayLow    string `json:"day_low"`
	DayClose  string `json:"day_close"`
	DayChange string `json:"day_change"`
	VolumeSrc string `json:"volume_src"`
	VolumeDst string `json:"volume_dst"`
}

type Candle struct {
	Time   string `json:"time"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

type CandleSeries struct {
	Symbol     string   `json:"symbol"`
	Resolution string   `json:"resolution"`
	Candles    []Candle `json:"candles"`
}
