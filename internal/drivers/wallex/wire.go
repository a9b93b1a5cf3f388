// Wire shapes of the Wallex REST API.
// API Doc: https://api-docs.wallex.ir
//
// Wallex quotes Toman natively and calls it TMN (BTCTMN). Values are never
// rescaled.
package wallex

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

//	{"result":{"symbols":{"BTCTMN":{"symbol":"BTCTMN","stats":{"bidPrice":"4100000000","askPrice":"4110000000"}}}},"success":true}
type marketsResponse struct {
	Result *struct {
		Symbols map[string]struct {
			Stats struct {
				BidPrice json.RawMessage `json:"bidPrice"`
			} `json:"stats"`
		} `json:"symbols"`
	} `json:"result"`
}

//	{"result":{"latestTrades":[{"symbol":"BTCTMN","quantity":"0.0012","price":"4100000000","isBuyOrder":true,"timestamp":"2021-07-26T10:52:29Z"}]}}
type tradesResponse struct {
	Result *struct {
		LatestTrades []tradeWire `json:"latestTrades"`
	} `json:"result"`
}

type tradeWire struct {
	Symbol     string              `json:"symbol"`
	Quantity   decimal.NullDecimal `json:"quantity"`
	Price      decimal.NullDecimal `json:"price"`
	IsBuyOrder bool                `json:"isBuyOrder"`
	Timestamp  string              `json:"timestamp"`
}

//	{"result":{"ask":[{"price":"4110000000","quantity":0.01,"sum":41100000}],"bid":[...]}}
type depthResponse struct {
	Result *struct {
		Ask []levelWire `json:"ask"`
		Bid []levelWire `json:"bid"`
	} `json:"result"`
}

type levelWire struct {
	Price    decimal.NullDecimal `json:"price"`
	Quantity decimal.NullDecimal `json:"quantity"`
}

type profileResponse struct {
	Result *struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Mobile    string `json:"mobile_number"`
	} `json:"result"`
}
