// Package configs provides application configuration loaded from environment variables.
// All configuration is externalized via environment variables for 12-factor app compliance.
package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all application configuration.
// Load it once at startup using AppLoad().
type AppConfig struct {
	// AppName is sent in the User-Agent header as TraderBot/<AppName>.
	AppName string

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string

	// DefaultExchange is used when a caller does not name an exchange.
	DefaultExchange string

	// Precision is the number of decimals in every formatted value.
	Precision int

	// HTTP contains transport settings shared by all drivers.
	HTTP HTTPConfig

	// Exchanges holds per-exchange endpoints and credentials keyed by name.
	Exchanges map[string]ExchangeConfig

	// Server contains settings for the REST API.
	Server ServerConfig

	// Kafka contains connection settings for the price feed.
	Kafka KafkaConfig

	// Feed contains settings for the price feed poller.
	Feed FeedConfig
}

// ExchangeConfig holds the endpoint and credentials of one exchange.
type ExchangeConfig struct {
	// BaseURL overrides the driver's default REST base URL when set.
	BaseURL string

	// APIKey is required for authenticated operations.
	APIKey string

	// SecretKey is optional and only read for exchanges that issue one.
	SecretKey string
}

// HTTPConfig holds outgoing request settings.
type HTTPConfig struct {
	// Timeout bounds every request.
	Timeout time.Duration

	// RateLimit is the maximum requests per second per exchange. 0 disables it.
	RateLimit float64
}

// ServerConfig holds REST API settings.
type ServerConfig struct {
	// Port the API listens on.
	Port string

	// GinMode is "debug", "release" or "test".
	GinMode string
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	// Broker is the Kafka broker address (e.g., "localhost:9092").
	Broker string

	// Topic receives price snapshots.
	Topic string
}

// FeedConfig holds price feed settings.
type FeedConfig struct {
	// Exchanges to poll (comma-separated in env). Empty means all.
	Exchanges []string

	// Interval between two polls of the same exchange.
	Interval time.Duration
}

// exchangeNames lists the exchanges read from the environment.
var exchangeNames = []string{"nobitex", "wallex", "bitpin"}

// getExchangeConfigs loads <NAME>_BASE_URL, <NAME>_API_KEY and <NAME>_SECRET_KEY
// for every known exchange.
func getExchangeConfigs() map[string]ExchangeConfig {
	exchanges := make(map[string]ExchangeConfig, len(exchangeNames))
	for _, name := range exchangeNames {
		prefix := strings.ToUpper(name)
		exchanges[name] = ExchangeConfig{
			BaseURL:   getEnv(prefix+"_BASE_URL", ""),
			APIKey:    getEnv(prefix+"_API_KEY", ""),
			SecretKey: getEnv(prefix+"_SECRET_KEY", ""),
		}
	}
	return exchanges
}

// getFeedConfig loads price feed settings from environment.
func getFeedConfig() FeedConfig {
	var exchanges []string
	for _, name := range strings.Split(getEnv("FEED_EXCHANGES", ""), ",") {
		if name = strings.TrimSpace(strings.ToLower(name)); name != "" {
			exchanges = append(exchanges, name)
		}
	}

	interval := getEnvInt("FEED_INTERVAL_SECONDS", 10)
	if interval <= 0 {
		interval = 10
	}

	return FeedConfig{
		Exchanges: exchanges,
		Interval:  time.Duration(interval) * time.Second,
	}
}

// AppLoad loads all application configuration from environment variables.
// It attempts to load a .env file first (for local development).
// Call this once at application startup.
func AppLoad() *AppConfig {
	_ = godotenv.Load() // Ignore error - .env is optional

	precision := getEnvInt("NUMBER_PRECISION", 6)
	if precision < 0 {
		precision = 6
	}

	return &AppConfig{
		AppName:         getEnv("APP_NAME", "exchange"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DefaultExchange: strings.ToLower(getEnv("DEFAULT_EXCHANGE", "nobitex")),
		Precision:       precision,
		HTTP: HTTPConfig{
			Timeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
			RateLimit: getEnvFloat("HTTP_RATE_LIMIT", 5),
		},
		Exchanges: getExchangeConfigs(),
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Kafka: KafkaConfig{
			Broker: getEnv("KAFKA_BROKER", "localhost:9092"),
			Topic:  getEnv("KAFKA_PRICE_TOPIC", "exchange_prices"),
		},
		Feed: getFeedConfig(),
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvFloat returns the environment variable as float64 or a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
