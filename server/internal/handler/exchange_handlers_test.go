package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/navid-fn/exchange/internal/exchange"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", exchange.Invalid("bad side"), http.StatusBadRequest},
		{"unknown exchange", fmt.Errorf("%w %q", exchange.ErrUnknownExchange, "kraken"), http.StatusNotFound},
		{"missing key", exchange.Misconfigured("no api key"), http.StatusBadRequest},
		{"unsupported", exchange.Unsupported(exchange.Bitpin, exchange.OpGetOrders), http.StatusNotImplemented},
		{"upstream", &exchange.UpstreamError{Exchange: exchange.Nobitex, StatusCode: 401, Message: "Invalid API Key"}, http.StatusBadGateway},
		{"malformed", exchange.Malformed("missing price"), http.StatusBadGateway},
		{"transport", fmt.Errorf("%w: timeout", exchange.ErrTransport), http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"1700000000", time.Unix(1700000000, 0), false},
		{"2024-01-02T03:04:05Z", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), false},
		{"2024-01-02T06:34:05+03:30", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), false},
		{"yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseTime(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTime(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTime(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
