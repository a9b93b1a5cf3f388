// Package base holds the plumbing shared by every exchange driver: transport
// setup, authentication headers, status checking and JSON decoding.
package base

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/logger"
	"github.com/navid-fn/exchange/internal/normalizer"
	"github.com/navid-fn/exchange/internal/transport"
)

// Options configure a driver. Zero values select defaults.
type Options struct {
	BaseURL string
	APIKey  string

	// SecretKey is accepted for configuration parity; no implemented
	// operation signs requests.
	SecretKey string
	AppName   string

	// Precision is the number of decimals in formatted values; zero selects
	// normalizer.DefaultPrecision.
	Precision int
	Timeout   time.Duration
	RateLimit float64
	Logger    logrus.FieldLogger

	// Transport replaces the resty client, mostly for tests.
	Transport transport.Doer
}

// Auth describes how an exchange expects its API key.
type Auth struct {
	Header string
	Prefix string
}

// Base is embedded by drivers.
type Base struct {
	Exchange  exchange.Name
	Client    transport.Doer
	Formatter normalizer.Formatter
	Logger    logrus.FieldLogger

	apiKey string
	auth   Auth
}

func New(name exchange.Name, defaultURL string, auth Auth, opts Options) *Base {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultURL
	}
	if opts.AppName == "" {
		opts.AppName = "exchange"
	}
	if opts.Precision == 0 {
		opts.Precision = normalizer.DefaultPrecision
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	log := opts.Logger.WithField("exchange", string(name))

	client := opts.Transport
	if client == nil {
		client = transport.New(transport.Config{
			BaseURL:   opts.BaseURL,
			Timeout:   opts.Timeout,
			RateLimit: opts.RateLimit,
			Logger:    log,
			Headers: map[string]string{
				"Accept":       "application/json",
				"Content-Type": "application/json",
				"User-Agent":   "TraderBot/" + opts.AppName,
			},
		})
	}

	return &Base{
		Exchange:  name,
		Client:    client,
		Formatter: normalizer.NewFormatter(opts.Precision),
		Logger:    log,
		apiKey:    opts.APIKey,
		auth:      auth,
	}
}

func (b *Base) Name() exchange.Name { return b.Exchange }

// AuthHeaders returns the headers of an authenticated call, or a
// configuration error when no API key is set.
func (b *Base) AuthHeaders(op exchange.Operation) (map[string]string, error) {
	if b.apiKey == "" {
		return nil, exchange.Misconfigured("%s requires an API key for %s", b.Exchange, op)
	}
	return map[string]string{b.auth.Header: b.auth.Prefix + b.apiKey}, nil
}

// Get performs an unauthenticated GET and returns the body of a 2xx response.
func (b *Base) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return b.Call(ctx, &transport.Request{Method: http.MethodGet, Path: path, Query: query})
}

// Call sends req and turns non-2xx responses into *exchange.UpstreamError.
func (b *Base) Call(ctx context.Context, req *transport.Request) ([]byte, error) {
	resp, err := b.Client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		b.Logger.WithFields(logrus.Fields{
			"path":   req.Path,
			"status": resp.StatusCode,
		}).Warn("Exchange returned an error")
		return nil, &exchange.UpstreamError{
			Exchange:   b.Exchange,
			StatusCode: resp.StatusCode,
			Message:    UpstreamMessage(resp.StatusCode, resp.Body),
		}
	}
	return resp.Body, nil
}

// UpstreamMessage extracts the message field of an error body, falling back
// to the raw body and then to the status text.
func UpstreamMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if raw := bytes.TrimSpace(body); len(raw) > 0 {
		return string(raw)
	}
	return http.StatusText(status)
}

// Decode unmarshals a success body, reporting failures as malformed.
func Decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return exchange.Malformed("decode body: %v", err)
	}
	return nil
}

// MalformedErr wraps a decoder error as ErrMalformedResponse.
func MalformedErr(err error) error {
	if err == nil {
		return nil
	}
	return exchange.Malformed("%v", err)
}

// NativeSymbol validates a caller supplied symbol and converts it to the
// exchange dialect.
func (b *Base) NativeSymbol(symbol string) (string, error) {
	native, err := normalizer.ToNative(string(b.Exchange), symbol)
	if err != nil {
		return "", exchange.Invalid("%v", err)
	}
	return native, nil
}
