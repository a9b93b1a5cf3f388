// Package transport performs HTTP requests against exchange REST APIs.
//
// Non-2xx responses are returned as ordinary responses; only failures to
// obtain a response (connect errors, timeouts, cancellation) are errors.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/logger"
)

const (
	DefaultTimeout = 10 * time.Second
	rateBurst      = 10
)

// Request describes one call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	// Body is encoded as JSON when non-nil.
	Body any
}

type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Doer is implemented by Client and by test doubles.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	Headers   map[string]string
	Logger    logrus.FieldLogger
}

// Client is a resty backed Doer. It never retries.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  logrus.FieldLogger
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeaders(cfg.Headers).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	c := &Client{http: rc, logger: cfg.Logger}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), rateBurst)
	}
	return c
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", exchange.ErrTransport, err)
		}
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r := c.http.R().
		SetContext(ctx).
		SetQueryParams(req.Query).
		SetHeaders(req.Headers)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(method, req.Path)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   req.Path,
		}).Warn("Request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", exchange.ErrTransport, method, req.Path, err)
	}

	c.logger.WithFields(logrus.Fields{
		"method":   method,
		"path":     req.Path,
		"status":   resp.StatusCode(),
		"duration": time.Since(start),
	}).Debug("Request completed")

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
