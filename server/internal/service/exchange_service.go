package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/server/internal/model"
)

// Resolver finds drivers by name. *registry.Registry implements it.
type Resolver interface {
	Resolve(name string) (exchange.Driver, error)
	Names() []exchange.Name
	Default() exchange.Name
}

type ExchangeService struct {
	drivers Resolver
}

func NewExchangeService(drivers Resolver) *ExchangeService {
	return &ExchangeService{
		drivers: drivers,
	}
}

func (s *ExchangeService) ListExchanges() []model.ExchangeInfo {
	names := s.drivers.Names()
	infos := make([]model.ExchangeInfo, 0, len(names))
	for _, name := range names {
		d, err := s.drivers.Resolve(string(name))
		if err != nil {
			continue
		}
		infos = append(infos, model.ExchangeInfo{
			Name:         name,
			Default:      name == s.drivers.Default(),
			Capabilities: d.Capabilities().List(),
		})
	}
	return infos
}

func (s *ExchangeService) Capabilities(name string) ([]exchange.Operation, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.Capabilities().List(), nil
}

func (s *ExchangeService) Markets(ctx context.Context, name string) (models.Prices, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetMarkets(ctx)
}

func (s *ExchangeService) Trades(ctx context.Context, name, symbol string) ([]models.Trade, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetMarketTrades(ctx, symbol)
}

func (s *ExchangeService) OrderBook(ctx context.Context, name, symbol string) (*models.OrderBook, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetMarketOrderBook(ctx, symbol)
}

func (s *ExchangeService) Ticker(ctx context.Context, name, symbol string) (*models.Ticker, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetMarketTicker(ctx, symbol)
}

func (s *ExchangeService) Candles(ctx context.Context, name, symbol string, from, to time.Time, resolution string) (*models.CandleSeries, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetMarketCandles(ctx, symbol, from, to, resolution)
}

func (s *ExchangeService) Profile(ctx context.Context, name string) (*models.Profile, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetProfile(ctx)
}

func (s *ExchangeService) Wallets(ctx context.Context, name string) ([]models.Wallet, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetWallets(ctx)
}

func (s *ExchangeService) LoginAttempts(ctx context.Context, name string) ([]models.LoginAttempt, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetLoginAttempts(ctx)
}

func (s *ExchangeService) Orders(ctx context.Context, name string) ([]models.Order, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetOrders(ctx)
}

func (s *ExchangeService) Order(ctx context.Context, name, id string) (*models.Order, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.GetOrder(ctx, id)
}

// CreateOrder parses the request body into an exchange.OrderRequest. Side
// and type are upper-cased and left for the driver to validate.
func (s *ExchangeService) CreateOrder(ctx context.Context, name string, req model.CreateOrderRequest) (*models.Order, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return nil, exchange.Invalid("quantity %q is not a number", req.Quantity)
	}
	order := exchange.OrderRequest{
		Symbol:   req.Symbol,
		Quantity: quantity,
		Side:     models.OrderSide(strings.ToUpper(req.Side)),
		Type:     models.OrderType(strings.ToUpper(req.Type)),
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, exchange.Invalid("price %q is not a number", req.Price)
		}
		order.Price = &price
	}
	return d.CreateOrder(ctx, order)
}

func (s *ExchangeService) CancelOrder(ctx context.Context, name, id string) (*models.Ack, error) {
	d, err := s.drivers.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.CancelOrder(ctx, id)
}
