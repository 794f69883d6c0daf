//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/avoronova/hh-scout/internal/config"
	"github.com/avoronova/hh-scout/internal/domain/ingest"
	hhprovider "github.com/avoronova/hh-scout/internal/domain/ingest/providers/hh"
	"github.com/avoronova/hh-scout/internal/repository"
	storage "github.com/avoronova/hh-scout/internal/storage/postgres"
	hhapi "github.com/avoronova/hh-scout/pkg/hh"
	"github.com/avoronova/hh-scout/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, log *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - PostgreSQL
		providePostgresConfig,
		storage.NewPool,

		// Infrastructure - hh.ru API
		provideHHConfig,
		hhapi.NewClient,

		// Repositories
		storage.NewVacancyRepository,
		wire.Bind(new(repository.VacancyRepository), new(*storage.VacancyRepository)),
		wire.Bind(new(ingest.Repository), new(*storage.VacancyRepository)),

		// Providers
		provideProvider,
		wire.Bind(new(ingest.Provider), new(*hhprovider.Provider)),

		// Services
		provideEmployerDelay,
		ingest.NewServiceWithDeps,

		// Console and background refresh
		provideMenu,
		provideScheduler,
		newResources,
	)

	return &Resources{}, nil
}
