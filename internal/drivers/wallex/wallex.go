// Package wallex implements the market data and profile operations of
// exchange.Driver for Wallex. Trading and wallet operations are not
// supported.
package wallex

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/transport"
)

const DefaultBaseURL = "https://api.wallex.ir/v1/"

var capabilities = exchange.NewCapabilities(
	exchange.OpGetMarkets,
	exchange.OpGetProfile,
	exchange.OpGetMarketTrades,
	exchange.OpGetMarketOrderBook,
	exchange.OpGetMarketCandles,
)

type Driver struct {
	*base.Base
	exchange.Unimplemented
}

var _ exchange.Driver = (*Driver)(nil)

func New(opts base.Options) *Driver {
	return &Driver{
		Base:          base.New(exchange.Wallex, DefaultBaseURL, base.Auth{Header: "x-api-key"}, opts),
		Unimplemented: exchange.Unimplemented{Exchange: exchange.Wallex},
	}
}

func (d *Driver) Capabilities() exchange.Capabilities { return capabilities }

func (d *Driver) GetMarkets(ctx context.Context) (models.Prices, error) {
	body, err := d.Get(ctx, "markets", nil)
	if err != nil {
		return nil, err
	}
	return decodeMarkets(body, d.Formatter)
}

func (d *Driver) GetMarketTrades(ctx context.Context, symbol string) ([]models.Trade, error) {
	native, err := d.NativeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	body, err := d.Get(ctx, "trades", map[string]string{"symbol": native})
	if err != nil {
		return nil, err
	}
	return decodeTrades(body, d.Formatter)
}

func (d *Driver) GetMarketOrderBook(ctx context.Context, symbol string) (*models.OrderBook, error) {
	native, err := d.NativeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	body, err := d.Get(ctx, "depth", map[string]string{"symbol": native})
	if err != nil {
		return nil, err
	}
	return decodeOrderBook(body, strings.ToUpper(symbol), d.Formatter)
}

func (d *Driver) GetMarketCandles(ctx context.Context, symbol string, from, to time.Time, resolution string) (*models.CandleSeries, error) {
	native, err := d.NativeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if resolution == "" {
		return nil, exchange.Invalid("resolution is required")
	}
	if to.Before(from) {
		return nil, exchange.Invalid("candle range ends before it starts")
	}

	body, err := d.Get(ctx, "udf/history", map[string]string{
		"symbol":     native,
		"resolution": resolution,
		"from":       strconv.FormatInt(from.Unix(), 10),
		"to":         strconv.FormatInt(to.Unix(), 10),
	})
	if err != nil {
		return nil, err
	}
	return base.DecodeCandles(d.Name(), body, strings.ToUpper(symbol), resolution, false, d.Formatter)
}

func (d *Driver) GetProfile(ctx context.Context) (*models.Profile, error) {
	headers, err := d.AuthHeaders(exchange.OpGetProfile)
	if err != nil {
		return nil, err
	}
	body, err := d.Call(ctx, &transport.Request{Method: http.MethodGet, Path: "account/profile", Headers: headers})
	if err != nil {
		return nil, err
	}
	return decodeProfile(body)
}
