// Package feed polls exchange markets and publishes price snapshots to Kafka.
package feed

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/logger"
)

const (
	DefaultInterval     = 10 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = time.Second
	WriteTimeout        = 5 * time.Second
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// PriceSnapshot is one market price published to the feed topic.
type PriceSnapshot struct {
	ID       string        `json:"id"`
	Exchange exchange.Name `json:"exchange"`
	Symbol   string        `json:"symbol"`
	Price    string        `json:"price"`
	Time     string        `json:"time"`
}

// SnapshotID creates a unique ID for a snapshot based on its properties
func SnapshotID(name exchange.Name, symbol, price, at string) string {
	unique := fmt.Sprintf("%s-%s-%s-%s", name, symbol, price, at)
	hash := sha1.Sum([]byte(unique))
	return hex.EncodeToString(hash[:])
}

type Config struct {
	// Interval between two polls of the same exchange.
	Interval time.Duration

	// MaxRetries bounds write attempts after the first failure.
	MaxRetries uint64

	// RetryBackoff is the first delay of the exponential write backoff.
	RetryBackoff time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = DefaultRetryBackoff
	}
	return c
}

type Feed struct {
	drivers []exchange.Driver
	writer  MessageWriter
	logger  logrus.FieldLogger
	cfg     Config
	now     func() time.Time
}

// New keeps the drivers that can list markets; the rest are logged and skipped.
func New(writer MessageWriter, log logrus.FieldLogger, cfg Config, drivers ...exchange.Driver) *Feed {
	if log == nil {
		log = logger.Discard()
	}

	f := &Feed{
		writer: writer,
		logger: log.WithField("component", "feed"),
		cfg:    cfg.withDefaults(),
		now:    time.Now,
	}
	for _, d := range drivers {
		if !d.Capabilities().Supports(exchange.OpGetMarkets) {
			f.logger.WithField("exchange", d.Name()).Warn("Exchange cannot list markets, skipping")
			continue
		}
		f.drivers = append(f.drivers, d)
	}
	return f
}

// Exchanges lists the exchanges the feed polls.
func (f *Feed) Exchanges() []exchange.Name {
	names := make([]exchange.Name, 0, len(f.drivers))
	for _, d := range f.drivers {
		names = append(names, d.Name())
	}
	return names
}

// Run polls every exchange until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	if len(f.drivers) == 0 {
		return exchange.Misconfigured("no exchange to poll")
	}

	var wg sync.WaitGroup
	for _, d := range f.drivers {
		wg.Add(1)
		go f.runWorker(ctx, d, &wg)
	}
	wg.Wait()
	return nil
}

func (f *Feed) runWorker(ctx context.Context, d exchange.Driver, wg *sync.WaitGroup) {
	defer wg.Done()

	log := f.logger.WithField("exchange", d.Name())
	limiter := rate.NewLimiter(rate.Every(f.cfg.Interval), 1)
	log.WithField("interval", f.cfg.Interval).Info("Starting price worker")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping price worker")
			return
		default:
			if err := limiter.Wait(ctx); err != nil {
				if ctx.Err() == nil {
					log.WithError(err).Error("Rate limiter error")
				}
				return
			}
			if err := f.Poll(ctx, d); err != nil && ctx.Err() == nil {
				log.WithError(err).Error("Error polling prices")
			}
		}
	}
}

// Poll fetches one price map from d and publishes it. It returns the first
// error; nothing is published when the fetch fails.
func (f *Feed) Poll(ctx context.Context, d exchange.Driver) error {
	prices, err := d.GetMarkets(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch markets: %w", err)
	}
	if len(prices) == 0 {
		return nil
	}

	msgs, err := f.messages(d.Name(), prices)
	if err != nil {
		return err
	}
	if err := f.send(ctx, msgs); err != nil {
		return err
	}

	f.logger.WithFields(logrus.Fields{
		"exchange": d.Name(),
		"markets":  len(msgs),
	}).Debug("Prices published")
	return nil
}

func (f *Feed) messages(name exchange.Name, prices map[string]string) ([]kafka.Message, error) {
	symbols := make([]string, 0, len(prices))
	for symbol := range prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	at := f.now().UTC().Format(time.RFC3339)
	msgs := make([]kafka.Message, 0, len(symbols))
	for _, symbol := range symbols {
		snapshot := PriceSnapshot{
			ID:       SnapshotID(name, symbol, prices[symbol], at),
			Exchange: name,
			Symbol:   symbol,
			Price:    prices[symbol],
			Time:     at,
		}
		data, err := json.Marshal(snapshot)
		if err != nil {
			return nil, fmt.Errorf("serialize snapshot failed: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(string(name) + ":" + symbol),
			Value: data,
		})
	}
	return msgs, nil
}

// send writes msgs with exponential backoff. A canceled ctx stops retrying
// without an error.
func (f *Feed) send(ctx context.Context, msgs []kafka.Message) error {
	backoff := retry.WithMaxRetries(f.cfg.MaxRetries, retry.NewExponential(f.cfg.RetryBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		writeCtx, cancel := context.WithTimeout(ctx, WriteTimeout)
		defer cancel()

		if err := f.writer.WriteMessages(writeCtx, msgs...); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			f.logger.WithError(err).Warn("Kafka write failed, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}
