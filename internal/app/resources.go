// Package app assembles the collector's runtime resources.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/hh-scout/internal/cli"
	"github.com/avoronova/hh-scout/internal/config"
	"github.com/avoronova/hh-scout/internal/domain/ingest"
	hhprovider "github.com/avoronova/hh-scout/internal/domain/ingest/providers/hh"
	"github.com/avoronova/hh-scout/internal/repository"
	"github.com/avoronova/hh-scout/internal/scheduler"
	storage "github.com/avoronova/hh-scout/internal/storage/postgres"
	hhapi "github.com/avoronova/hh-scout/pkg/hh"
	"github.com/avoronova/hh-scout/pkg/logging"
)

// Resources bundles everything main needs to run and to unwind.
type Resources struct {
	Pool      *pgxpool.Pool
	Menu      *cli.Menu
	Scheduler *scheduler.Scheduler

	log  *logging.Logger
	once sync.Once
}

// Shutdown stops the background refresh and releases the database pool.
// Safe to call more than once.
func (r *Resources) Shutdown(ctx context.Context) error {
	_ = ctx
	r.once.Do(func() {
		if r.Scheduler != nil {
			r.Scheduler.Stop()
		}
		if r.Pool != nil {
			r.Pool.Close()
		}
		r.log.Info("resources released")
	})
	return nil
}

// providePostgresConfig extracts storage config from main config
func providePostgresConfig(cfg config.Config) storage.Config {
	return storage.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		Database: cfg.DB.Name,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
	}
}

// provideHHConfig extracts hh.ru client config from main config
func provideHHConfig(cfg config.Config) hhapi.Config {
	return hhapi.Config{
		BaseURL:   cfg.HH.BaseURL,
		UserAgent: cfg.HH.UserAgent,
		Timeout:   cfg.HH.Timeout,
		PageSize:  cfg.HH.PageSize,
		PageDelay: cfg.HH.PageDelay,
	}
}

// provideProvider creates the hh.ru vacancy provider from the API client
func provideProvider(client *hhapi.Client, log *logging.Logger) (*hhprovider.Provider, error) {
	return hhprovider.NewProvider(client, log)
}

// provideEmployerDelay extracts the pause between employers
func provideEmployerDelay(cfg config.Config) time.Duration {
	return cfg.EmployerDelay
}

// provideMenu creates the interactive console
func provideMenu(
	service ingest.Service,
	repo repository.VacancyRepository,
	cfg config.Config,
	log *logging.Logger,
) *cli.Menu {
	return cli.NewMenu(service, repo, cfg.EmployerIDs, log)
}

// provideScheduler creates the optional background refresh
func provideScheduler(service ingest.Service, cfg config.Config, log *logging.Logger) *scheduler.Scheduler {
	return scheduler.New(service, cfg.EmployerIDs, cfg.RefreshCron, log)
}

// newResources creates Resources struct
func newResources(
	pool *pgxpool.Pool,
	menu *cli.Menu,
	sched *scheduler.Scheduler,
	log *logging.Logger,
) *Resources {
	return &Resources{
		Pool:      pool,
		Menu:      menu,
		Scheduler: sched,
		log:       log.Named("app"),
	}
}
