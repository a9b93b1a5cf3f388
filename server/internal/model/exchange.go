package model

import "github.com/navid-fn/exchange/internal/exchange"

// ExchangeInfo describes one registered exchange.
type ExchangeInfo struct {
	Name         exchange.Name        `json:"name"`
	Default      bool                 `json:"default"`
	Capabilities []exchange.Operation `json:"capabilities"`
}

// CreateOrderRequest is the body of POST /orders. Quantity and price are
// decimal strings.
type CreateOrderRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
	Side     string `json:"side" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Price    string `json:"price"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
