package base

import (
	"errors"
	"net/http"
	"testing"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/normalizer"
)

func TestUpstreamMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"Message field", http.StatusUnauthorized, `{"message":"Invalid API Key"}`, "Invalid API Key"},
		{"No message field", http.StatusNotFound, `{"detail":"Not found."}`, `{"detail":"Not found."}`},
		{"Empty message", http.StatusBadRequest, `{"message":""}`, `{"message":""}`},
		{"Plain text", http.StatusBadGateway, " bad gateway \n", "bad gateway"},
		{"Empty body", http.StatusServiceUnavailable, "", "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpstreamMessage(tt.status, []byte(tt.body)); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestAuthHeaders(t *testing.T) {
	b := New(exchange.Nobitex, "http://localhost", Auth{Header: "Authorization", Prefix: "Token "}, Options{APIKey: "abc"})
	headers, err := b.AuthHeaders(exchange.OpGetProfile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if headers["Authorization"] != "Token abc" {
		t.Errorf("Expected 'Token abc', got '%s'", headers["Authorization"])
	}

	b = New(exchange.Wallex, "http://localhost", Auth{Header: "x-api-key"}, Options{})
	if _, err := b.AuthHeaders(exchange.OpGetProfile); !errors.Is(err, exchange.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestNew(t *testing.T) {
	b := New(exchange.Bitpin, "http://localhost", Auth{}, Options{})
	if b.Name() != exchange.Bitpin {
		t.Errorf("Expected bitpin, got %s", b.Name())
	}
	if b.Formatter.Precision != normalizer.DefaultPrecision {
		t.Errorf("Expected default precision, got %d", b.Formatter.Precision)
	}
	if b.Client == nil || b.Logger == nil {
		t.Error("Expected client and logger to be initialized")
	}
}

func TestNativeSymbol(t *testing.T) {
	b := New(exchange.Wallex, "http://localhost", Auth{}, Options{})
	native, err := b.NativeSymbol("btc-irt")
	if err != nil || native != "BTCTMN" {
		t.Errorf("Expected BTCTMN, got %s (%v)", native, err)
	}
	if _, err := b.NativeSymbol("BTC"); !errors.Is(err, exchange.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestDecodeCandles(t *testing.T) {
	f := normalizer.NewFormatter(2)

	series, err := DecodeCandles(exchange.Nobitex, []byte(`{"s":"ok","t":[0],"o":["100"],"h":[200],"l":[50],"c":[150],"v":["3"]}`),
		"BTC-IRT", "D", true, f)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	c := series.Candles[0]
	if c.Open != "10.00" || c.High != "20.00" || c.Volume != "3.00" || c.Time != "1970-01-01T00:00:00+00:00" {
		t.Errorf("Unexpected candle %+v", c)
	}

	_, err = DecodeCandles(exchange.Nobitex, []byte(`{"s":"error","errmsg":"Invalid symbol"}`), "BTC-IRT", "D", true, f)
	var upstream *exchange.UpstreamError
	if !errors.As(err, &upstream) || upstream.Message != "Invalid symbol" {
		t.Errorf("Expected UpstreamError, got %v", err)
	}

	if _, err := DecodeCandles(exchange.Nobitex, []byte(`{"s":"weird"}`), "BTC-IRT", "D", true, f); !errors.Is(err, exchange.ErrMalformedResponse) {
		t.Errorf("Expected ErrMalformedResponse, got %v", err)
	}
}
