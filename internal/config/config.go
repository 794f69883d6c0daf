// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Top IT employers on hh.ru; the default collection scope.
var defaultEmployerIDs = []int{
	3529,    // Sberbank
	64174,   // 2GIS
	1740,    // Yandex
	2180,    // Ozon Tech
	17000,   // HeadHunter
	9498370, // Wildberries
	733,     // Otkritie
	78638,   // Tinkoff
	4219,    // Tele2
	2620,    // Alfa-Bank
}

// Config contains runtime settings for the collector and console.
type Config struct {
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Target database connection settings
	DB DBConfig `env:", prefix=DB_"`
	// hh.ru API client settings
	HH HHConfig `env:", prefix=HH_"`

	// Employers to collect; falls back to a fixed list of large IT
	// companies when unset.
	EmployerIDs []int `env:"EMPLOYER_IDS"`
	// Pause between employers during a load run
	EmployerDelay time.Duration `env:"EMPLOYER_DELAY, default=500ms"`

	// Cron spec (e.g. "@every 6h") enabling background refresh.
	// Empty keeps refresh manual.
	RefreshCron string `env:"REFRESH_CRON"`
}

type DBConfig struct {
	Host     string `env:"HOST, default=localhost"`
	Port     string `env:"PORT, default=5432"`
	Name     string `env:"NAME, default=hh_database"`
	User     string `env:"USER, default=postgres"`
	Password string `env:"PASSWORD"`
}

type HHConfig struct {
	BaseURL   string        `env:"BASE_URL, default=https://api.hh.ru"`
	UserAgent string        `env:"USER_AGENT, default=hh-scout/1.0"`
	Timeout   time.Duration `env:"TIMEOUT, default=5s"`
	PageSize  int           `env:"PAGE_SIZE, default=100"`
	PageDelay time.Duration `env:"PAGE_DELAY, default=100ms"`
}

// Load reads .env when present, then populates config from environment
// variables.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}
	applyFallbacks(&cfg)
	return cfg, nil
}

// LoadWith populates config from the given lookuper. Tests use it to
// avoid touching the process environment.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}
	applyFallbacks(&cfg)
	return cfg, nil
}

func applyFallbacks(cfg *Config) {
	if len(cfg.EmployerIDs) == 0 {
		cfg.EmployerIDs = defaultEmployerIDs
	}
}
