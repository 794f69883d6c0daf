package ingest

import (
	"context"

	"github.com/avoronova/hh-scout/internal/domain"
)

// Repository is the write-side subset of storage the loader needs.
type Repository interface {
	// UpsertCompany creates or overwrites a company row keyed by its
	// external id.
	UpsertCompany(ctx context.Context, employer domain.Employer) error

	// InsertVacancy stores a vacancy unless a row with the same external
	// id already exists. Reports whether a row was actually written.
	InsertVacancy(ctx context.Context, vacancy domain.Vacancy) (bool, error)
}
