package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/server/internal/model"
	"github.com/navid-fn/exchange/server/internal/service"
)

const defaultCandleWindow = 24 * time.Hour

type ExchangeHandler struct {
	exchangeService *service.ExchangeService
}

func NewExchangeHandler(service *service.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeService: service,
	}
}

func (h *ExchangeHandler) ListExchanges(c *gin.Context) {
	c.JSON(http.StatusOK, h.exchangeService.ListExchanges())
}

func (h *ExchangeHandler) GetCapabilities(c *gin.Context) {
	ops, err := h.exchangeService.Capabilities(c.Param("exchange"))
	respond(c, ops, err)
}

func (h *ExchangeHandler) GetMarkets(c *gin.Context) {
	prices, err := h.exchangeService.Markets(c.Request.Context(), c.Param("exchange"))
	respond(c, prices, err)
}

func (h *ExchangeHandler) GetTrades(c *gin.Context) {
	trades, err := h.exchangeService.Trades(c.Request.Context(), c.Param("exchange"), c.Param("symbol"))
	respond(c, trades, err)
}

func (h *ExchangeHandler) GetOrderBook(c *gin.Context) {
	book, err := h.exchangeService.OrderBook(c.Request.Context(), c.Param("exchange"), c.Param("symbol"))
	respond(c, book, err)
}

func (h *ExchangeHandler) GetTicker(c *gin.Context) {
	ticker, err := h.exchangeService.Ticker(c.Request.Context(), c.Param("exchange"), c.Param("symbol"))
	respond(c, ticker, err)
}

// GetCandles accepts from and to as RFC 3339 or unix seconds. The window
// defaults to the last 24 hours and resolution to 60.
func (h *ExchangeHandler) GetCandles(c *gin.Context) {
	to := time.Now()
	if raw := c.Query("to"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			respond(c, nil, exchange.Invalid("to: %v", err))
			return
		}
		to = t
	}
	from := to.Add(-defaultCandleWindow)
	if raw := c.Query("from"); raw != "" {
		t, err := parseTime(raw)
		if err != nil {
			respond(c, nil, exchange.Invalid("from: %v", err))
			return
		}
		from = t
	}

	series, err := h.exchangeService.Candles(c.Request.Context(), c.Param("exchange"), c.Param("symbol"),
		from, to, c.DefaultQuery("resolution", "60"))
	respond(c, series, err)
}

func (h *ExchangeHandler) GetProfile(c *gin.Context) {
	profile, err := h.exchangeService.Profile(c.Request.Context(), c.Param("exchange"))
	respond(c, profile, err)
}

func (h *ExchangeHandler) GetWallets(c *gin.Context) {
	wallets, err := h.exchangeService.Wallets(c.Request.Context(), c.Param("exchange"))
	respond(c, wallets, err)
}

func (h *ExchangeHandler) GetLoginAttempts(c *gin.Context) {
	attempts, err := h.exchangeService.LoginAttempts(c.Request.Context(), c.Param("exchange"))
	respond(c, attempts, err)
}

func (h *ExchangeHandler) GetOrders(c *gin.Context) {
	orders, err := h.exchangeService.Orders(c.Request.Context(), c.Param("exchange"))
	respond(c, orders, err)
}

func (h *ExchangeHandler) GetOrder(c *gin.Context) {
	order, err := h.exchangeService.Order(c.Request.Context(), c.Param("exchange"), c.Param("id"))
	respond(c, order, err)
}

func (h *ExchangeHandler) CreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, nil, exchange.Invalid("%v", err))
		return
	}

	order, err := h.exchangeService.CreateOrder(c.Request.Context(), c.Param("exchange"), req)
	if err != nil {
		respond(c, nil, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *ExchangeHandler) CancelOrder(c *gin.Context) {
	ack, err := h.exchangeService.CancelOrder(c.Request.Context(), c.Param("exchange"), c.Param("id"))
	respond(c, ack, err)
}

func respond(c *gin.Context, body any, err error) {
	if err != nil {
		c.JSON(StatusFor(err), model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}

// StatusFor maps driver error kinds to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, exchange.ErrUnknownExchange):
		return http.StatusNotFound
	case errors.Is(err, exchange.ErrValidation), errors.Is(err, exchange.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, exchange.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, exchange.ErrUpstream), errors.Is(err, exchange.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(err, exchange.ErrTransport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func parseTime(raw string) (time.Time, error) {
	if sec, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	return time.Parse(time.RFC3339, raw)
}
