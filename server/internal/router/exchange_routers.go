package router

import (
	"github.com/gin-gonic/gin"

	"github.com/navid-fn/exchange/server/internal/handler"
)

func registerExchangeRoutes(router *gin.RouterGroup, exchangeHandler *handler.ExchangeHandler) {
	router.GET("/exchanges", exchangeHandler.ListExchanges)

	exchanges := router.Group("/exchanges/:exchange")
	{
		exchanges.GET("/capabilities", exchangeHandler.GetCapabilities)

		exchanges.GET("/markets", exchangeHandler.GetMarkets)
		exchanges.GET("/markets/:symbol/trades", exchangeHandler.GetTrades)
		exchanges.GET("/markets/:symbol/orderbook", exchangeHandler.GetOrderBook)
		exchanges.GET("/markets/:symbol/ticker", exchangeHandler.GetTicker)
		exchanges.GET("/markets/:symbol/candles", exchangeHandler.GetCandles)

		exchanges.GET("/profile", exchangeHandler.GetProfile)
		exchanges.GET("/wallets", exchangeHandler.GetWallets)
		exchanges.GET("/login-attempts", exchangeHandler.GetLoginAttempts)

		exchanges.GET("/orders", exchangeHandler.GetOrders)
		exchanges.GET("/orders/:id", exchangeHandler.GetOrder)
		exchanges.POST("/orders", exchangeHandler.CreateOrder)
		exchanges.DELETE("/orders/:id", exchangeHandler.CancelOrder)
	}
}
