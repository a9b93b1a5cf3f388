// Package nobitex implements exchange.Driver for Nobitex. Every operation is
// supported. Rial markets are rescaled to Toman on the way back.
package nobitex

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/normalizer"
	"github.com/navid-fn/exchange/internal/transport"
)

const DefaultBaseURL = "https://api.nobitex.ir/"

var capabilities = exchange.NewCapabilities(
	exchange.OpGetMarkets,
	exchange.OpGetProfile,
	exchange.OpGetOrders,
	exchange.OpGetOrder,
	exchange.OpGetWallets,
	exchange.OpGetLoginAttempts,
	exchange.OpGetMarketTrades,
	exchange.OpGetMarketOrderBook,
	exchange.OpGetMarketTicker,
	exchange.OpGetMarketCandles,
	exchange.OpCreateOrder,
	exchange.OpCancelOrder,
)

type Driver struct {
	*base.Base
}

var _ exchange.Driver = (*Driver)(nil)

func New(opts base.Options) *Driver {
	return &Driver{
		Base: base.New(exchange.Nobitex, DefaultBaseURL, base.Auth{Header: "Authorization", Prefix: "Token "}, opts),
	}
}

func (d *Driver) Capabilities() exchange.Capabilities { return capabilities }

func (d *Driver) GetMarkets(ctx context.Context) (models.Prices, error) {
	body, err := d.Get(ctx, "v2/orderbook/all", nil)
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
	body, err := d.Get(ctx, "v2/trades/"+native, nil)
	if err != nil {
		return nil, err
	}
	return decodeTrades(body, native, d.Formatter)
}

func (d *Driver) GetMarketOrderBook(ctx context.Context, symbol string) (*models.OrderBook, error) {
	native, err := d.NativeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	body, err := d.Get(ctx, "v2/orderbook/"+native, nil)
	if err != nil {
		return nil, err
	}
	book, err := decodeOrderBook(body, native, d.Formatter)
	if err != nil {
		return nil, err
	}
	book.Symbol = strings.ToUpper(symbol)
	return book, nil
}

// GetMarketTicker queries market/stats. Toman markets are requested as rls.
func (d *Driver) GetMarketTicker(ctx context.Context, symbol string) (*models.Ticker, error) {
	b, q, err := normalizer.Explode(strings.ToUpper(symbol))
	if err != nil {
		return nil, exchange.Invalid("%v", err)
	}
	src := strings.ToLower(b)
	dst := strings.ToLower(normalizer.RialCurrency(q))

	body, err := d.Get(ctx, "market/stats", map[string]string{
		"srcCurrency": src,
		"dstCurrency": dst,
	})
	if err != nil {
		return nil, err
	}
	return decodeTicker(body, b+"-"+q, src+"-"+dst, d.Formatter)
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

	body, err := d.Get(ctx, "market/udf/history", map[string]string{
		"symbol":     native,
		"resolution": resolution,
		"from":       strconv.FormatInt(from.Unix(), 10),
		"to":         strconv.FormatInt(to.Unix(), 10),
	})
	if err != nil {
		return nil, err
	}
	canonical := strings.ToUpper(symbol)
	return base.DecodeCandles(d.Name(), body, canonical, resolution, normalizer.IsTomanMarket(canonical), d.Formatter)
}

func (d *Driver) GetProfile(ctx context.Context) (*models.Profile, error) {
	body, err := d.private(ctx, exchange.OpGetProfile, http.MethodGet, "users/profile", nil)
	if err != nil {
		return nil, err
	}
	return decodeProfile(body)
}

func (d *Driver) GetWallets(ctx context.Context) ([]models.Wallet, error) {
	body, err := d.private(ctx, exchange.OpGetWallets, http.MethodPost, "users/wallets/list", nil)
	if err != nil {
		return nil, err
	}
	return decodeWallets(body, d.Formatter)
}

func (d *Driver) GetLoginAttempts(ctx context.Context) ([]models.LoginAttempt, error) {
	body, err := d.private(ctx, exchange.OpGetLoginAttempts, http.MethodGet, "users/login-attempts", nil)
	if err != nil {
		return nil, err
	}
	return decodeLoginAttempts(body)
}

func (d *Driver) GetOrders(ctx context.Context) ([]models.Order, error) {
	body, err := d.private(ctx, exchange.OpGetOrders, http.MethodPost, "market/orders/list", map[string]any{
		"status":  "all",
		"details": 2,
	})
	if err != nil {
		return nil, err
	}
	return decodeOrders(body, d.Formatter)
}

func (d *Driver) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, exchange.Invalid("order id is required")
	}
	body, err := d.private(ctx, exchange.OpGetOrder, http.MethodPost, "market/orders/status", map[string]any{
		"id": id,
	})
	if err != nil {
		return nil, err
	}
	return decodeOrderResponse(body, d.Formatter)
}

// CreateOrder places a LIMIT or MARKET order. A Toman quote is sent as rls,
// while amount and price are sent as given.
func (d *Driver) CreateOrder(ctx context.Context, req exchange.OrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b, q, err := normalizer.Explode(strings.ToUpper(req.Symbol))
	if err != nil {
		return nil, exchange.Invalid("%v", err)
	}

	order := createOrderBody{
		Amount:      d.Formatter.Format(req.Quantity),
		SrcCurrency: strings.ToLower(b),
		DstCurrency: strings.ToLower(normalizer.RialCurrency(q)),
		Type:        strings.ToLower(string(req.Side)),
		Execution:   strings.ToLower(string(req.Type)),
	}
	if req.Price != nil {
		// TODO: confirm whether rls prices should be multiplied by 10 before sending.
		order.Price = req.Price.String()
	}

	body, err := d.private(ctx, exchange.OpCreateOrder, http.MethodPost, "market/orders/add", order)
	if err != nil {
		return nil, err
	}
	d.Logger.WithField("symbol", req.Symbol).Info("Order submitted")
	return decodeOrderResponse(body, d.Formatter)
}

func (d *Driver) CancelOrder(ctx context.Context, id string) (*models.Ack, error) {
	if id == "" {
		return nil, exchange.Invalid("order id is required")
	}
	body, err := d.private(ctx, exchange.OpCancelOrder, http.MethodPost, "market/orders/update-status", map[string]any{
		"order":  id,
		"status": "canceled",
	})
	if err != nil {
		return nil, err
	}

	var resp cancelResponse
	if err := base.Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.UpdatedStatus == "" {
		return nil, exchange.Malformed("updatedStatus missing")
	}
	return &models.Ack{ID: id, Status: strings.ToUpper(resp.UpdatedStatus)}, nil
}

// private sends an authenticated request.
func (d *Driver) private(ctx context.Context, op exchange.Operation, method, path string, payload any) ([]byte, error) {
	headers, err := d.AuthHeaders(op)
	if err != nil {
		return nil, err
	}
	return d.Call(ctx, &transport.Request{
		Method:  method,
		Path:    path,
		Headers: headers,
		Body:    payload,
	})
}
