package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(nil))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if cfg.DB.Host != "localhost" || cfg.DB.Port != "5432" {
		t.Errorf("DB defaults = %s:%s, want localhost:5432", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.DB.Name != "hh_database" {
		t.Errorf("DB.Name = %q, want hh_database", cfg.DB.Name)
	}
	if cfg.DB.User != "postgres" || cfg.DB.Password != "" {
		t.Errorf("DB credentials = %s/%q, want postgres with empty password", cfg.DB.User, cfg.DB.Password)
	}
	if cfg.HH.BaseURL != "https://api.hh.ru" {
		t.Errorf("HH.BaseURL = %q", cfg.HH.BaseURL)
	}
	if cfg.HH.Timeout != 5*time.Second {
		t.Errorf("HH.Timeout = %v, want 5s", cfg.HH.Timeout)
	}
	if cfg.HH.PageSize != 100 {
		t.Errorf("HH.PageSize = %d, want 100", cfg.HH.PageSize)
	}
	if len(cfg.EmployerIDs) == 0 {
		t.Error("EmployerIDs fallback list must not be empty")
	}
	if cfg.RefreshCron != "" {
		t.Errorf("RefreshCron = %q, want disabled by default", cfg.RefreshCron)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	lookuper := envconfig.MapLookuper(map[string]string{
		"DB_HOST":        "db.internal",
		"DB_PASSWORD":    "secret",
		"HH_PAGE_SIZE":   "50",
		"EMPLOYER_IDS":   "1,2,3",
		"EMPLOYER_DELAY": "2s",
		"REFRESH_CRON":   "@every 6h",
	})

	cfg, err := LoadWith(context.Background(), lookuper)
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if cfg.DB.Host != "db.internal" || cfg.DB.Password != "secret" {
		t.Errorf("DB overrides not applied: %+v", cfg.DB)
	}
	if cfg.HH.PageSize != 50 {
		t.Errorf("HH.PageSize = %d, want 50", cfg.HH.PageSize)
	}
	if len(cfg.EmployerIDs) != 3 || cfg.EmployerIDs[0] != 1 || cfg.EmployerIDs[2] != 3 {
		t.Errorf("EmployerIDs = %v, want [1 2 3]", cfg.EmployerIDs)
	}
	if cfg.EmployerDelay != 2*time.Second {
		t.Errorf("EmployerDelay = %v, want 2s", cfg.EmployerDelay)
	}
	if cfg.RefreshCron != "@every 6h" {
		t.Errorf("RefreshCron = %q", cfg.RefreshCron)
	}
}
