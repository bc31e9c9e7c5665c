package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		// BaseURL switches the market-data source to a generic bars REST
		// API; when empty, Yahoo Finance is used.
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Market struct {
		Watchlist    []string `yaml:"watchlist"`
		LookbackDays int      `yaml:"lookback_days"`
	} `yaml:"market"`
	Analysis struct {
		HorizonDays int `yaml:"horizon_days"`
		// Pointers so an explicitly configured 0.0 band is distinguishable
		// from "unset" (which defaults to 5%).
		UpThreshold   *float64 `yaml:"up_threshold"`
		DownThreshold *float64 `yaml:"down_threshold"`
	} `yaml:"analysis"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		var symbols []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
		cfg.Market.Watchlist = symbols
	}
	if v := os.Getenv("HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.HorizonDays = n
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if len(cfg.Market.Watchlist) == 0 {
		cfg.Market.Watchlist = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 365
	}
	if cfg.Analysis.HorizonDays == 0 {
		cfg.Analysis.HorizonDays = 7
	}
	if cfg.Analysis.UpThreshold == nil {
		v := 0.05
		cfg.Analysis.UpThreshold = &v
	}
	if cfg.Analysis.DownThreshold == nil {
		v := 0.05
		cfg.Analysis.DownThreshold = &v
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trend_advisor.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Market.Watchlist) == 0 {
		return fmt.Errorf("market.watchlist must not be empty")
	}
	if c.Market.LookbackDays < 2 {
		return fmt.Errorf("market.lookback_days must be at least 2")
	}
	if c.Analysis.HorizonDays < 1 {
		return fmt.Errorf("analysis.horizon_days must be at least 1")
	}
	if *c.Analysis.UpThreshold < 0 || *c.Analysis.DownThreshold < 0 {
		return fmt.Errorf("analysis thresholds must not be negative")
	}
	return nil
}
