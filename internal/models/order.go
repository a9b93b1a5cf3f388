package models

// OrderSide is the canonical order direction.
type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType is the canonical execution type.
type OrderType string

const (
	TypeLimit  OrderType = "LIMIT"
	TypeMarket OrderType = "MARKET"
)

func (s OrderSide) Valid() bool { return s == SideBuy || s == SideSell }

func (t OrderType) Valid() bool { return t == TypeLimit || t == TypeMarket }

// Order is the exchange independent view of an order.
// Decimal fields are fixed-point strings; OriginalPrice is nil for orders
// without a fixed price.
type Order struct {
	ID                      string    `json:"id"`
	Market                  string    `json:"market"`
	Type                    OrderType `json:"type"`
	Side                    OrderSide `json:"side"`
	OriginalQuantity        string    `json:"original_quantity"`
	ExecutedQuantity        string    `json:"executed_quantity"`
	CumulativeQuoteQuantity string    `json:"cumulative_quote_quantity"`
	FillPercentage          string    `json:"fill_percentage"`
	OriginalPrice           *string   `json:"original_price"`
	ExecutedPrice           string    `json:"executed_price"`
	WageQuantity            string    `json:"wage_quantity"`
	CreatedAt               string    `json:"created_at"`
}

// Ack acknowledges a state change such as a cancellation.
type Ack struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
