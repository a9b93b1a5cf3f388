package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/navid-fn/exchange/configs"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/feed"
	"github.com/navid-fn/exchange/internal/logger"
	"github.com/navid-fn/exchange/internal/registry"
)

func main() {
	appConfig := configs.AppLoad()
	log := logger.New(appConfig.LogLevel)

	drivers, err := registry.New(appConfig, log)
	if err != nil {
		log.Fatalf("Failed to build exchange registry: %v", err)
	}

	names := appConfig.Feed.Exchanges
	if len(names) == 0 {
		for _, name := range drivers.Names() {
			names = append(names, string(name))
		}
	}
	selected := make([]exchange.Driver, 0, len(names))
	for _, name := range names {
		d, err := drivers.Resolve(name)
		if err != nil {
			log.Fatalf("Invalid FEED_EXCHANGES: %v", err)
		}
		selected = append(selected, d)
	}

	priceWriter := &kafka.Writer{
		Addr:         kafka.TCP(appConfig.Kafka.Broker),
		Topic:        appConfig.Kafka.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Compression:  kafka.Zstd,
	}
	defer priceWriter.Close()

	priceFeed := feed.New(priceWriter, log, feed.Config{Interval: appConfig.Feed.Interval}, selected...)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"topic":     appConfig.Kafka.Topic,
		"exchanges": priceFeed.Exchanges(),
	}).Info("Starting price feed")

	if err := priceFeed.Run(ctx); err != nil {
		log.Fatalf("Price feed failed: %v", err)
	}
	log.Info("Price feed stopped")
}
