package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Market MarketConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=club_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MarketConfig struct {
	BaseURL string `env:"MARKET_BASE_URL, default=https://finnhub.io/api/v1"`
	APIKey  string `env:"MARKET_API_KEY"`
	// RefreshCron is a standard 5-field cron expression. The default runs
	// hourly on weekdays during extended US trading hours (UTC).
	RefreshCron string        `env:"MARKET_REFRESH_CRON, default=0 13-22 * * 1-5"`
	CacheTTL    time.Duration `env:"MARKET_CACHE_TTL,    default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
