// Package exchange defines the capability interface every exchange driver
// implements, the capability set drivers declare, and the error kinds they
// surface.
package exchange

import (
	"context"
	"sort"
	"time"

	"github.com/navid-fn/exchange/internal/models"
	"github.com/shopspring/decimal"
)

// Name identifies a supported exchange. The set is closed.
type Name string

const (
	Nobitex Name = "nobitex"
	Wallex  Name = "wallex"
	Bitpin  Name = "bitpin"
)

// Names lists every supported exchange in a stable order.
var Names = []Name{Nobitex, Wallex, Bitpin}

func (n Name) Valid() bool {
	switch n {
	case Nobitex, Wallex, Bitpin:
		return true
	}
	return false
}

// Operation tags one method of Driver.
type Operation string

const (
	OpGetMarkets         Operation = "getMarkets"
	OpGetProfile         Operation = "getProfile"
	OpGetOrders          Operation = "getOrders"
	OpGetOrder           Operation = "getOrder"
	OpGetWallets         Operation = "getWallets"
	OpGetLoginAttempts   Operation = "getLoginAttempts"
	OpGetMarketTrades    Operation = "getMarketTrades"
	OpGetMarketOrderBook Operation = "getMarketOrderBook"
	OpGetMarketTicker    Operation = "getMarketTicker"
	OpGetMarketCandles   Operation = "getMarketCandles"
	OpCreateOrder        Operation = "createOrder"
	OpCancelOrder        Operation = "cancelOrder"
)

// Capabilities is the set of operations a driver actually implements.
type Capabilities map[Operation]struct{}

func NewCapabilities(ops ...Operation) Capabilities {
	c := make(Capabilities, len(ops))
	for _, op := range ops {
		c[op] = struct{}{}
	}
	return c
}

func (c Capabilities) Supports(op Operation) bool {
	_, ok := c[op]
	return ok
}

// List returns the operations sorted by name.
func (c Capabilities) List() []Operation {
	ops := make([]Operation, 0, len(c))
	for op := range c {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// OrderRequest describes a new order in canonical terms. Price is nil for
// market orders.
type OrderRequest struct {
	Symbol   string
	Quantity decimal.Decimal
	Side     models.OrderSide
	Type     models.OrderType
	Price    *decimal.Decimal
}

// Validate checks side, type and quantity. Drivers call it before building a
// request so nothing reaches the network on bad input.
func (r OrderRequest) Validate() error {
	if !r.Side.Valid() {
		return Invalid("side %q is not one of BUY, SELL", r.Side)
	}
	if !r.Type.Valid() {
		return Invalid("type %q is not one of LIMIT, MARKET", r.Type)
	}
	if !r.Quantity.IsPositive() {
		return Invalid("quantity must be positive, got %s", r.Quantity)
	}
	if r.Price != nil && !r.Price.IsPositive() {
		return Invalid("price must be positive, got %s", r.Price)
	}
	return nil
}

// Driver is the capability interface implemented once per exchange. Symbols
// are canonical hyphenated pairs such as "BTC-IRT".
type Driver interface {
	Name() Name
	Capabilities() Capabilities

	GetMarkets(ctx context.Context) (models.Prices, error)
	GetMarketTrades(ctx context.Context, symbol string) ([]models.Trade, error)
	GetMarketOrderBook(ctx context.Context, symbol string) (*models.OrderBook, error)
	GetMarketTicker(ctx context.Context, symbol string) (*models.Ticker, error)
	GetMarketCandles(ctx context.Context, symbol string, from, to time.Time, resolution string) (*models.CandleSeries, error)

	GetProfile(ctx context.Context) (*models.Profile, error)
	GetWallets(ctx context.Context) ([]models.Wallet, error)
	GetLoginAttempts(ctx context.Context) ([]models.LoginAttempt, error)

	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*models.Order, error)
	CancelOrder(ctx context.Context, id string) (*models.Ack, error)
}
