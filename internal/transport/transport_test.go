package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/navid-fn/exchange/internal/exchange"
)

func TestClientDo(t *testing.T) {
	var gotQuery, gotAuth, gotAgent, gotBody, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query().Get("symbol")
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := New(Config{
		BaseURL: server.URL,
		Headers: map[string]string{"User-Agent": "TraderBot/test"},
	})

	resp, err := client.Do(context.Background(), &Request{
		Method:  http.MethodPost,
		Path:    "/market/orders/add",
		Query:   map[string]string{"symbol": "BTCIRT"},
		Headers: map[string]string{"Authorization": "Token abc"},
		Body:    map[string]string{"type": "buy"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !resp.IsSuccess() {
		t.Errorf("Expected success, got status %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"status":"ok"}` {
		t.Errorf("Unexpected body: %s", resp.Body)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotQuery != "BTCIRT" {
		t.Errorf("Expected query symbol 'BTCIRT', got '%s'", gotQuery)
	}
	if gotAuth != "Token abc" {
		t.Errorf("Expected auth header, got '%s'", gotAuth)
	}
	if gotAgent != "TraderBot/test" {
		t.Errorf("Expected default User-Agent, got '%s'", gotAgent)
	}
	if gotBody != `{"type":"buy"}` {
		t.Errorf("Expected JSON body, got '%s'", gotBody)
	}
}

func TestClientDoNonSuccessIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid API Key"}`))
	}))
	defer server.Close()

	resp, err := New(Config{BaseURL: server.URL}).Do(context.Background(), &Request{Path: "/users/profile"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
	if resp.IsSuccess() {
		t.Error("401 should not be a success")
	}
}

func TestClientDoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(Config{BaseURL: url}).Do(context.Background(), &Request{Path: "/"})
	if !errors.Is(err, exchange.ErrTransport) {
		t.Errorf("Expected ErrTransport, got %v", err)
	}
}

func TestClientDoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond})
	_, err := client.Do(context.Background(), &Request{Path: "/"})
	if !errors.Is(err, exchange.ErrTransport) {
		t.Errorf("Expected ErrTransport on timeout, got %v", err)
	}
}

func TestClientDoCanceledContext(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1", RateLimit: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, &Request{Path: "/"})
	if !errors.Is(err, exchange.ErrTransport) {
		t.Errorf("Expected ErrTransport for canceled context, got %v", err)
	}
}
