package exchange

import (
	"context"
	"time"

	"github.com/navid-fn/exchange/internal/models"
)

// Unimplemented answers every Driver operation with ErrUnsupportedOperation.
// Partial drivers embed it and override what they support.
type Unimplemented struct {
	Exchange Name
}

func (u Unimplemented) GetMarkets(context.Context) (models.Prices, error) {
	return nil, Unsupported(u.Exchange, OpGetMarkets)
}

func (u Unimplemented) GetMarketTrades(context.Context, string) ([]models.Trade, error) {
	return nil, Unsupported(u.Exchange, OpGetMarketTrades)
}

func (u Unimplemented) GetMarketOrderBook(context.Context, string) (*models.OrderBook, error) {
	return nil, Unsupported(u.Exchange, OpGetMarketOrderBook)
}

func (u Unimplemented) GetMarketTicker(context.Context, string) (*models.Ticker, error) {
	return nil, Unsupported(u.Exchange, OpGetMarketTicker)
}

func (u Unimplemented) GetMarketCandles(context.Context, string, time.Time, time.Time, string) (*models.CandleSeries, error) {
	return nil, Unsupported(u.Exchange, OpGetMarketCandles)
}

func (u Unimplemented) GetProfile(context.Context) (*models.Profile, error) {
	return nil, Unsupported(u.Exchange, OpGetProfile)
}

func (u Unimplemented) GetWallets(context.Context) ([]models.Wallet, error) {
	return nil, Unsupported(u.Exchange, OpGetWallets)
}

func (u Unimplemented) GetLoginAttempts(context.Context) ([]models.LoginAttempt, error) {
	return nil, Unsupported(u.Exchange, OpGetLoginAttempts)
}

func (u Unimplemented) GetOrders(context.Context) ([]models.Order, error) {
	return nil, Unsupported(u.Exchange, OpGetOrders)
}

func (u Unimplemented) GetOrder(context.Context, string) (*models.Order, error) {
	return nil, Unsupported(u.Exchange, OpGetOrder)
}

func (u Unimplemented) CreateOrder(context.Context, OrderRequest) (*models.Order, error) {
	return nil, Unsupported(u.Exchange, OpCreateOrder)
}

func (u Unimplemented) CancelOrder(context.Context, string) (*models.Ack, error) {
	return nil, Unsupported(u.Exchange, OpCancelOrder)
}
