package bitpin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/models"
)

func newTestDriver(t *testing.T, handler http.HandlerFunc) *Driver {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(base.Options{BaseURL: server.URL})
}

func TestGetMarkets(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/mkt/tickers/" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"symbol":"BTC_IRT","price":"4100000000"},{"symbol":"ETH_USDT","price":"3500.5"},` +
			`{"symbol":"XYZ_EUR","price":"1"},{"symbol":"DOGE_IRT","price":null}]`))
	})

	prices, err := d.GetMarkets(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := models.Prices{
		"BTC-IRT":  "4100000000.000000",
		"ETH-USDT": "3500.500000",
	}
	if len(prices) != len(expected) {
		t.Fatalf("Expected %d prices, got %v", len(expected), prices)
	}
	for symbol, price := range expected {
		if prices[symbol] != price {
			t.Errorf("Expected %s=%s, got '%s'", symbol, price, prices[symbol])
		}
	}
}

func TestGetMarketTrades(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/mth/matches/BTC_IRT/" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"a1","price":"4100000000","base_amount":"0.001","quote_amount":"4100000","side":"sell","time":1736973000.5}]`))
	})

	trades, err := d.GetMarketTrades(context.Background(), "BTC-IRT")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("Expected 1 trade, got %d", len(trades))
	}
	if trades[0].Side != models.SideSell || trades[0].Volume != "0.001000" {
		t.Errorf("Unexpected trade %+v", trades[0])
	}
	if trades[0].Time != "2025-01-15T20:30:00+00:00" {
		t.Errorf("Unexpected time %s", trades[0].Time)
	}
}

func TestGetMarketOrderBook(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"asks":[["4110000000","0.01"]],"bids":[["4100000000","0.2"],["4090000000","1"]]}`))
	})

	book, err := d.GetMarketOrderBook(context.Background(), "BTC-IRT")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(book.Bids) != 2 || len(book.Asks) != 1 {
		t.Fatalf("Unexpected book %+v", book)
	}
	if book.Asks[0].Price != "4110000000.000000" {
		t.Errorf("Expected Toman price untouched, got %s", book.Asks[0].Price)
	}
}

func TestGetMarketCandles(t *testing.T) {
	var res string
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		res = r.URL.Query().Get("res")
		w.Write([]byte(`[{"open":7880000000.0,"close":7997908007.0,"low":"7794557593","high":"8050000000.0",` +
			`"volume":"1.087160998021016446803192218","ts":1736886600.0,"resolution":"1d"}]`))
	})

	series, err := d.GetMarketCandles(context.Background(), "BTC-IRT", time.Unix(1736886600, 0), time.Unix(1736973000, 0), "1D")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if res != "1D" {
		t.Errorf("Expected res=1D, got %s", res)
	}
	if len(series.Candles) != 1 {
		t.Fatalf("Expected 1 candle, got %d", len(series.Candles))
	}
	c := series.Candles[0]
	if c.Open != "7880000000.000000" || c.Low != "7794557593.000000" || c.Volume != "1.087161" {
		t.Errorf("Unexpected candle %+v", c)
	}
	if c.Time != "2025-01-14T20:30:00+00:00" {
		t.Errorf("Unexpected time %s", c.Time)
	}
}

func TestUpstreamErrorWithoutMessage(t *testing.T) {
	d := newTestDriver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	})

	_, err := d.GetMarketTrades(context.Background(), "XYZ-IRT")

	var upstream *exchange.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if upstream.Message != `{"detail":"Not found."}` {
		t.Errorf("Expected raw body as message, got '%s'", upstream.Message)
	}
}

func TestUnsupportedOperations(t *testing.T) {
	d := New(base.Options{APIKey: "key"})

	if _, err := d.GetProfile(context.Background()); !errors.Is(err, exchange.ErrUnsupportedOperation) {
		t.Errorf("Expected ErrUnsupportedOperation, got %v", err)
	}
	if _, err := d.CancelOrder(context.Background(), "1"); !errors.Is(err, exchange.ErrUnsupportedOperation) {
		t.Errorf("Expected ErrUnsupportedOperation, got %v", err)
	}
	if d.Capabilities().Supports(exchange.OpGetProfile) {
		t.Error("Bitpin should not advertise getProfile")
	}
}
