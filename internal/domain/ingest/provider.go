package ingest

import (
	"context"

	"github.com/avoronova/hh-scout/internal/domain"
)

// Provider represents an external vacancy data source (hh.ru, a fixture
// server in tests, etc.)
type Provider interface {
	// e.g. "hh"
	Name() string

	// Employer returns the employer record for the given external id.
	Employer(ctx context.Context, employerID int) (domain.Employer, error)

	// Vacancies returns all normalized vacancies of the employer. Items
	// that failed normalization and pages that failed to download are
	// already filtered out; whatever was collected is returned.
	Vacancies(ctx context.Context, employerID int) ([]domain.Vacancy, error)
}
