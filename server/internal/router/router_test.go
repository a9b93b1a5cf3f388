package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/logger"
	"github.com/navid-fn/exchange/internal/models"
	"github.com/navid-fn/exchange/internal/registry"
	"github.com/navid-fn/exchange/server/internal/handler"
	"github.com/navid-fn/exchange/server/internal/model"
	"github.com/navid-fn/exchange/server/internal/service"
)

// fakeDriver serves canned data and records what it was asked for.
type fakeDriver struct {
	exchange.Unimplemented

	created    *exchange.OrderRequest
	candleFrom time.Time
	candleTo   time.Time
	resolution string
}

func (f *fakeDriver) Name() exchange.Name { return f.Exchange }

func (f *fakeDriver) Capabilities() exchange.Capabilities {
	return exchange.NewCapabilities(exchange.OpGetMarkets, exchange.OpGetMarketCandles,
		exchange.OpCreateOrder, exchange.OpCancelOrder)
}

func (f *fakeDriver) GetMarkets(context.Context) (models.Prices, error) {
	return models.Prices{"BTC-IRT": "50000.000000"}, nil
}

func (f *fakeDriver) GetMarketCandles(_ context.Context, symbol string, from, to time.Time, resolution string) (*models.CandleSeries, error) {
	f.candleFrom, f.candleTo, f.resolution = from, to, resolution
	return &models.CandleSeries{Symbol: symbol, Resolution: resolution, Candles: []models.Candle{}}, nil
}

func (f *fakeDriver) CreateOrder(_ context.Context, req exchange.OrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.created = &req
	return &models.Order{ID: "42", Market: req.Symbol, Side: req.Side, Type: req.Type}, nil
}

func (f *fakeDriver) CancelOrder(_ context.Context, id string) (*models.Ack, error) {
	return &models.Ack{ID: id, Status: "CANCELED"}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeDriver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nobitex := &fakeDriver{Unimplemented: exchange.Unimplemented{Exchange: exchange.Nobitex}}
	wallex := &fakeDriver{Unimplemented: exchange.Unimplemented{Exchange: exchange.Wallex}}
	drivers, err := registry.FromDrivers(exchange.Nobitex, nobitex, wallex)
	if err != nil {
		t.Fatalf("FromDrivers: %v", err)
	}

	r := NewRouter(&Config{
		ExchangeHandler: handler.NewExchangeHandler(service.NewExchangeService(drivers)),
		Logger:          logger.Discard(),
	})
	return r, nobitex
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListExchanges(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/exchanges", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var infos []model.ExchangeInfo
	if err := json.Unmarshal(w.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d exchanges, want 2", len(infos))
	}
	if infos[0].Name != exchange.Nobitex || !infos[0].Default {
		t.Errorf("first exchange = %+v, want default nobitex", infos[0])
	}
	if infos[1].Default {
		t.Errorf("wallex should not be default")
	}
}

func TestRouteStatuses(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"markets", http.MethodGet, "/v1/exchanges/nobitex/markets", "", http.StatusOK},
		{"case insensitive name", http.MethodGet, "/v1/exchanges/NOBITEX/markets", "", http.StatusOK},
		{"unknown exchange", http.MethodGet, "/v1/exchanges/kraken/markets", "", http.StatusNotFound},
		{"unsupported", http.MethodGet, "/v1/exchanges/wallex/profile", "", http.StatusNotImplemented},
		{"capabilities", http.MethodGet, "/v1/exchanges/wallex/capabilities", "", http.StatusOK},
		{"cancel", http.MethodDelete, "/v1/exchanges/nobitex/orders/7", "", http.StatusOK},
		{"bad candle range", http.MethodGet, "/v1/exchanges/nobitex/markets/BTC-IRT/candles?from=soon", "", http.StatusBadRequest},
		{"missing body fields", http.MethodPost, "/v1/exchanges/nobitex/orders", `{"symbol":"BTC-IRT"}`, http.StatusBadRequest},
		{"bad quantity", http.MethodPost, "/v1/exchanges/nobitex/orders",
			`{"symbol":"BTC-IRT","quantity":"lots","side":"buy","type":"limit","price":"1"}`, http.StatusBadRequest},
		{"invalid side", http.MethodPost, "/v1/exchanges/nobitex/orders",
			`{"symbol":"BTC-IRT","quantity":"1","side":"hold","type":"limit","price":"1"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestErrorBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/exchanges/kraken/markets", "")

	var resp model.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Error, "kraken") {
		t.Errorf("error = %q, want it to name the exchange", resp.Error)
	}
}

func TestCreateOrder(t *testing.T) {
	r, driver := newTestRouter(t)

	w := serve(r, http.MethodPost, "/v1/exchanges/nobitex/orders",
		`{"symbol":"BTC-IRT","quantity":"0.5","side":"sell","type":"market"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	if driver.created == nil {
		t.Fatal("driver did not receive the order")
	}
	if driver.created.Side != models.SideSell || driver.created.Type != models.TypeMarket {
		t.Errorf("side/type = %s/%s, want SELL/MARKET", driver.created.Side, driver.created.Type)
	}
	if driver.created.Price != nil {
		t.Errorf("price = %v, want nil for market order", driver.created.Price)
	}
	if driver.created.Quantity.String() != "0.5" {
		t.Errorf("quantity = %s, want 0.5", driver.created.Quantity)
	}
}

func TestCandleDefaults(t *testing.T) {
	r, driver := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/exchanges/nobitex/markets/BTC-IRT/candles?to=1700086400", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if driver.resolution != "60" {
		t.Errorf("resolution = %q, want 60", driver.resolution)
	}
	if got := driver.candleTo.Sub(driver.candleFrom); got != 24*time.Hour {
		t.Errorf("window = %v, want 24h", got)
	}
	if driver.candleTo.Unix() != 1700086400 {
		t.Errorf("to = %d, want 1700086400", driver.candleTo.Unix())
	}
}
