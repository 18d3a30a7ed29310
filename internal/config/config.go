package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all gateway configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// ConsolePassHash is the bcrypt hash of the local console passcode.
	ConsolePassHash string

	Upstream   UpstreamConfig
	Realtime   RealtimeConfig
	Redis      RedisConfig
	LocalStore LocalStoreConfig
	Checkout   CheckoutConfig
	Worker     WorkerConfig
}

// UpstreamConfig points at the IndiaBills backend REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RealtimeConfig configures the upstream realtime channel.
type RealtimeConfig struct {
	URL              string
	ReconnectMin     time.Duration
	ReconnectMax     time.Duration
	HandshakeTimeout time.Duration
}

// RedisConfig contains Redis connection parameters for the catalog cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// LocalStoreConfig locates the embedded key/value store file.
type LocalStoreConfig struct {
	Path string
}

// CheckoutConfig carries the delivery fee step function: delivery is
// free above the threshold, a flat fee otherwise.
type CheckoutConfig struct {
	FreeDeliveryAbove int
	DeliveryFee       int
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	PaymentRetryInterval   time.Duration
	CatalogRefreshInterval time.Duration
}

// Load reads configuration from environment variables. If a .env file
// exists in the working directory it is loaded first. It returns a
// populated Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that
	// environments relying solely on real env vars keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnv("PORT", "7100")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.ConsolePassHash = getEnv("CONSOLE_PASSCODE_HASH", "")

	cfg.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Timeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
	}

	cfg.Realtime = RealtimeConfig{
		URL:              getEnv("REALTIME_URL", ""),
		ReconnectMin:     getEnvDuration("REALTIME_RECONNECT_MIN", time.Second),
		ReconnectMax:     getEnvDuration("REALTIME_RECONNECT_MAX", 30*time.Second),
		HandshakeTimeout: getEnvDuration("REALTIME_HANDSHAKE_TIMEOUT", 10*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
		TTL:      getEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute),
	}

	cfg.LocalStore = LocalStoreConfig{
		Path: getEnv("LOCAL_STORE_PATH", "console.db"),
	}

	cfg.Checkout = CheckoutConfig{
		FreeDeliveryAbove: getEnvInt("FREE_DELIVERY_ABOVE", 499),
		DeliveryFee:       getEnvInt("DELIVERY_FEE", 40),
	}

	cfg.Worker = WorkerConfig{
		PaymentRetryInterval:   getEnvDuration("PAYMENT_RETRY_INTERVAL", time.Minute),
		CatalogRefreshInterval: getEnvDuration("CATALOG_REFRESH_INTERVAL", 15*time.Minute),
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, errors.New("UPSTREAM_BASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
