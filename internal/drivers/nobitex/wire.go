// Wire shapes of the Nobitex REST API.
// API Doc: https://apidocs.nobitex.ir
//
// Rial markets end in RLS on the wire (e.g. "BTC-RLS" in order records,
// "BTCIRT" in market data whose prices are still Rial).
package nobitex

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// marketEntry is one value of v2/orderbook/all. lastTradePrice is a string
// or, on some markets, an array whose first element is the price.
type marketEntry struct {
	LastTradePrice json.RawMessage `json:"lastTradePrice"`
}

//	{"status":"ok","trades":[{"time":1588291560071,"price":"3720000000","volume":"0.0022","type":"sell"}]}
type tradesResponse struct {
	Trades *[]tradeWire `json:"trades"`
}

type tradeWire struct {
	Time   int64               `json:"time"`
	Price  decimal.NullDecimal `json:"price"`
	Volume decimal.NullDecimal `json:"volume"`
	Type   string              `json:"type"`
}

//	{"status":"ok","lastUpdate":1726581829816,"bids":[["35020080080","0.185784"]],"asks":[["35077909990","0.009433"]]}
type orderBookResponse struct {
	Bids *[][]decimal.Decimal `json:"bids"`
	Asks *[][]decimal.Decimal `json:"asks"`
}

//	{"status":"ok","stats":{"btc-rls":{"isClosed":false,"bestSell":"...","latest":"...","dayChange":"-0.5"}}}
type statsResponse struct {
	Stats map[string]statsWire `json:"stats"`
}

type statsWire struct {
	IsClosed  bool                `json:"isClosed"`
	BestBuy   decimal.NullDecimal `json:"bestBuy"`
	BestSell  decimal.NullDecimal `json:"bestSell"`
	Latest    decimal.NullDecimal `json:"latest"`
	DayOpen   decimal.NullDecimal `json:"dayOpen"`
	DayHigh   decimal.NullDecimal `json:"dayHigh"`
	DayLow    decimal.NullDecimal `json:"dayLow"`
	DayClose  decimal.NullDecimal `json:"dayClose"`
	DayChange decimal.NullDecimal `json:"dayChange"`
	VolumeSrc decimal.NullDecimal `json:"volumeSrc"`
	VolumeDst decimal.NullDecimal `json:"volumeDst"`
}

type profileResponse struct {
	Profile *struct {
		Username         string `json:"username"`
		Email            string `json:"email"`
		FirstName        string `json:"firstName"`
		LastName         string `json:"lastName"`
		Mobile           string `json:"mobile"`
		WithdrawEligible bool   `json:"withdrawEligible"`
	} `json:"profile"`
}

type walletsResponse struct {
	Wallets *[]walletWire `json:"wallets"`
}

type walletWire struct {
	ID             json.RawMessage     `json:"id"`
	Currency       string              `json:"currency"`
	Balance        decimal.NullDecimal `json:"balance"`
	BlockedBalance decimal.NullDecimal `json:"blockedBalance"`
	ActiveBalance  decimal.NullDecimal `json:"activeBalance"`
}

type loginAttemptsResponse struct {
	Attempts *[]struct {
		IP        string `json:"ip"`
		Username  string `json:"username"`
		Status    string `json:"status"`
		CreatedAt string `json:"createdAt"`
	} `json:"attempts"`
}

// orderWire is an order record. Note the naming: type is the side and
// execution is the order type.
//
//	{"type":"sell","execution":"Limit","market":"XLM-RLS","price":"4000","amount":"10",
//	 "totalPrice":"0","matchedAmount":"0","averagePrice":"0","fee":0,"id":25,
//	 "created_at":"2018-11-28T11:36:13.592827+00:00"}
type orderWire struct {
	ID            json.RawMessage     `json:"id"`
	Type          string              `json:"type"`
	Execution     string              `json:"execution"`
	Market        string              `json:"market"`
	Price         json.RawMessage     `json:"price"`
	Amount        decimal.NullDecimal `json:"amount"`
	MatchedAmount decimal.NullDecimal `json:"matchedAmount"`
	TotalPrice    decimal.NullDecimal `json:"totalPrice"`
	AveragePrice  decimal.NullDecimal `json:"averagePrice"`
	Fee           decimal.NullDecimal `json:"fee"`
	CreatedAt     string              `json:"created_at"`
}

type orderResponse struct {
	Order *orderWire `json:"order"`
}

type ordersResponse struct {
	Orders *[]orderWire `json:"orders"`
}

type cancelResponse struct {
	UpdatedStatus string `json:"updatedStatus"`
}

// createOrderBody is sent lower-cased, as Nobitex expects.
type createOrderBody struct {
	Amount      string `json:"amount"`
	SrcCurrency string `json:"srcCurrency"`
	DstCurrency string `json:"dstCurrency"`
	Type        string `json:"type"`
	Execution   string `json:"execution"`
	Price       string `json:"price,omitempty"`
}
