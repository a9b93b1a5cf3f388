// Package bitpin implements the public market data operations of
// exchange.Driver for Bitpin.
package bitpin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
)

const DefaultBaseURL = "https://api.bitpin.ir/"

var capabilities = exchange.NewCapabilities(
	exchange.OpGetMarkets,
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
		Base:          base.New(exchange.Bitpin, DefaultBaseURL, base.Auth{Header: "x-api-key"}, opts),
		Unimplemented: exchange.Unimplemented{Exchange: exchange.Bitpin},
	}
}

func (d *Driver) Capabilities() exchange.Capabilities { return capabilities }

func (d *Driver) GetMarkets(ctx context.Context) (models.Prices, error) {
	body, err := d.Get(ctx, "api/v1/mkt/tickers/", nil)
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
	body, err := d.Get(ctx, "api/v1/mth/matches/"+native+"/", nil)
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
	body, err := d.Get(ctx, "api/v1/mth/orderbook/"+native+"/", nil)
	if err != nil {
		return nil, err
	}
	return decodeOrderBook(body, strings.ToUpper(symbol), d.Formatter)
}

// GetMarketCandles reads the chart bars endpoint. resolution is passed as
// the res parameter (e.g. "1D", "60").
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

	body, err := d.Get(ctx, "v1/mkt/tv/get_bars/", map[string]string{
		"symbol": native,
		"from":   strconv.FormatInt(from.Unix(), 10),
		"to":     strconv.FormatInt(to.Unix(), 10),
		"res":    resolution,
	})
	if err != nil {
		return nil, err
	}
	return decodeCandles(body, strings.ToUpper(symbol), resolution, d.Formatter)
}
