package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"AstroSentinel/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL, overwrite"`
		Format string `yaml:"format" env:"LOG_FORMAT, overwrite"`
	} `yaml:"logging"`
	Server struct {
		Addr string `yaml:"addr" env:"SERVER_ADDR, overwrite"`
	} `yaml:"server"`
	Telegram struct {
		BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN, overwrite"`
		ChatID   string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID, overwrite"`
	} `yaml:"telegram"`
	Schedule struct {
		DigestCron string   `yaml:"digest_cron" env:"CRON_DIGEST, overwrite"`
		Watchlist  []string `yaml:"watchlist" env:"WATCHLIST, overwrite"`
		Timeframe  string   `yaml:"timeframe" env:"DIGEST_TIMEFRAME, overwrite"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH, overwrite"`
	} `yaml:"database"`
	Redis struct {
		Addr     string        `yaml:"addr" env:"REDIS_ADDR, overwrite"`
		Password string        `yaml:"password" env:"REDIS_PASSWORD, overwrite"`
		DB       int           `yaml:"db" env:"REDIS_DB, overwrite"`
		TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL, overwrite"`
	} `yaml:"redis"`
	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS, overwrite"`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC, overwrite"`
	} `yaml:"kafka"`
	Proxy string `yaml:"proxy" env:"HTTPS_PROXY, overwrite"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Schedule.DigestCron == "" {
		c.Schedule.DigestCron = "0 0 8 * * 1-5"
	}
	if len(c.Schedule.Watchlist) == 0 {
		c.Schedule.Watchlist = []string{"AAPL", "MSFT", "SPY"}
	}
	if c.Schedule.Timeframe == "" {
		c.Schedule.Timeframe = "intraday"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 24 * time.Hour
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "astro-reports"
	}
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if _, err := model.ParseTimeframe(c.Schedule.Timeframe); err != nil {
		return fmt.Errorf("schedule.timeframe: %w", err)
	}
	for _, s := range c.Schedule.Watchlist {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("schedule.watchlist contains an empty symbol")
		}
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis.ttl must not be negative")
	}
	return nil
}

// TelegramEnabled reports whether bot credentials are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// DigestTimeframe returns the parsed schedule timeframe. Call after Validate.
func (c *Config) DigestTimeframe() model.Timeframe {
	tf, _ := model.ParseTimeframe(c.Schedule.Timeframe)
	return tf
}
