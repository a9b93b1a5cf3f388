package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/navid-fn/exchange/configs"
	"github.com/navid-fn/exchange/internal/logger"
	"github.com/navid-fn/exchange/internal/registry"
	"github.com/navid-fn/exchange/server/internal/handler"
	"github.com/navid-fn/exchange/server/internal/router"
	"github.com/navid-fn/exchange/server/internal/service"
)

func main() {
	cfg := configs.AppLoad()
	log := logger.New(cfg.LogLevel)

	drivers, err := registry.New(cfg, log)
	if err != nil {
		log.Fatalf("Failed to build exchange registry: %v", err)
	}

	exchangeService := service.NewExchangeService(drivers)
	exchangeHandler := handler.NewExchangeHandler(exchangeService)

	gin.SetMode(cfg.Server.GinMode)
	routerConfig := &router.Config{
		ExchangeHandler: exchangeHandler,
		Logger:          log,
	}

	router := router.NewRouter(routerConfig)

	log.WithField("port", cfg.Server.Port).Info("Starting exchange API")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
