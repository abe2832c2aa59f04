package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Sources struct {
		CMCBaseURL   string `yaml:"cmc_base_url" envconfig:"CMC_BASE_URL"`
		CMCAPIKey    string `yaml:"cmc_api_key" envconfig:"CMC_API_KEY"`
		GeckoBaseURL string `yaml:"gecko_base_url" envconfig:"GECKO_BASE_URL"`
		FngBaseURL   string `yaml:"fng_base_url" envconfig:"FNG_BASE_URL"`
	} `yaml:"sources"`
	Schedule struct {
		QuoteCron string `yaml:"quote_cron" envconfig:"QUOTE_CRON"`
		PanelCron string `yaml:"panel_cron" envconfig:"PANEL_CRON"`
	} `yaml:"schedule"`
	Server struct {
		Port int `yaml:"port" envconfig:"PORT"`
	} `yaml:"server"`
	Alerts struct {
		StateFile string `yaml:"state_file" envconfig:"ALERTS_STATE_FILE"`
	} `yaml:"alerts"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
		PostgresDSN string `yaml:"postgres_dsn" envconfig:"POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string        `yaml:"addr" envconfig:"REDIS_ADDR"`
		Password string        `yaml:"password" envconfig:"REDIS_PASSWORD"`
		DB       int           `yaml:"db" envconfig:"REDIS_DB"`
		TTL      time.Duration `yaml:"ttl" envconfig:"REDIS_TTL"`
	} `yaml:"redis"`
	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then fills defaults.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is fine
	_ = godotenv.Load()

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

	if err := envconfig.Process("cryptodash", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Sources.CMCBaseURL == "" {
		cfg.Sources.CMCBaseURL = "https://pro-api.coinmarketcap.com"
	}
	if cfg.Sources.GeckoBaseURL == "" {
		cfg.Sources.GeckoBaseURL = "https://api.coingecko.com"
	}
	if cfg.Sources.FngBaseURL == "" {
		cfg.Sources.FngBaseURL = "https://api.alternative.me"
	}
	if cfg.Schedule.QuoteCron == "" {
		cfg.Schedule.QuoteCron = "@every 1m"
	}
	if cfg.Schedule.PanelCron == "" {
		cfg.Schedule.PanelCron = "@every 5m"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Alerts.StateFile == "" {
		cfg.Alerts.StateFile = "data/alerts.json"
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = 10 * time.Minute
	}
}

// Validate checks that required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Sources.CMCAPIKey == "" {
		return fmt.Errorf("sources.cmc_api_key is required (primary source is key-authenticated)")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	return nil
}
