package registry

import (
	"errors"
	"testing"

	"github.com/navid-fn/exchange/configs"
	"github.com/navid-fn/exchange/internal/exchange"
)

func testConfig(defaultExchange string) *configs.AppConfig {
	return &configs.AppConfig{
		AppName:         "test",
		DefaultExchange: defaultExchange,
		Precision:       6,
		Exchanges: map[string]configs.ExchangeConfig{
			"nobitex": {APIKey: "token"},
		},
	}
}

func TestResolve(t *testing.T) {
	r, err := New(testConfig("nobitex"), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		expected exchange.Name
	}{
		{"", exchange.Nobitex},
		{"nobitex", exchange.Nobitex},
		{"Wallex", exchange.Wallex},
		{"BITPIN", exchange.Bitpin},
	}

	for _, tt := range tests {
		d, err := r.Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error %v", tt.name, err)
			continue
		}
		if d.Name() != tt.expected {
			t.Errorf("Resolve(%q): expected %s, got %s", tt.name, tt.expected, d.Name())
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	r, err := New(testConfig("wallex"), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, err = r.Resolve("binance")
	if !errors.Is(err, exchange.ErrConfiguration) || !errors.Is(err, exchange.ErrUnknownExchange) {
		t.Errorf("Expected ErrUnknownExchange, got %v", err)
	}
	if r.Default() != exchange.Wallex {
		t.Errorf("Expected default wallex, got %s", r.Default())
	}
}

func TestUnknownDefault(t *testing.T) {
	if _, err := New(testConfig("kraken"), nil); !errors.Is(err, exchange.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestNames(t *testing.T) {
	r, err := New(testConfig("bitpin"), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	names := r.Names()
	if len(names) != 3 || names[0] != exchange.Nobitex || names[2] != exchange.Bitpin {
		t.Errorf("Unexpected names %v", names)
	}
}

func TestConstructorsCoverEveryExchange(t *testing.T) {
	for _, name := range exchange.Names {
		if _, ok := Constructors[name]; !ok {
			t.Errorf("Missing constructor for %s", name)
		}
	}
}
