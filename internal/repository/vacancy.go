package repository

import (
	"context"

	"github.com/avoronova/hh-scout/internal/domain"
)

// VacancyRepository defines the full storage surface: the loader's writes
// plus the analytical read queries served by the console.
type VacancyRepository interface {
	// UpsertCompany overwrites name/site/open-vacancy-count on conflict.
	UpsertCompany(ctx context.Context, employer domain.Employer) error

	// InsertVacancy leaves an existing row untouched on conflict and
	// reports whether a new row was written.
	InsertVacancy(ctx context.Context, vacancy domain.Vacancy) (bool, error)

	// CompaniesWithVacancyCounts lists every company with its stored
	// vacancy count, highest first. Companies without vacancies count 0.
	CompaniesWithVacancyCounts(ctx context.Context) ([]domain.CompanyVacancyCount, error)

	// AllVacancies lists every vacancy joined with its company, ordered
	// by company name then vacancy name.
	AllVacancies(ctx context.Context) ([]domain.VacancyListing, error)

	// AverageSalary returns the mean of the salary midpoints over
	// vacancies that declare at least one bound, or nil without data.
	// An absent bound counts as zero before halving.
	AverageSalary(ctx context.Context) (*float64, error)

	// VacanciesAboveAverageSalary lists vacancies whose midpoint exceeds
	// the global average, highest midpoint first.
	VacanciesAboveAverageSalary(ctx context.Context) ([]domain.VacancyListing, error)

	// VacanciesByKeyword matches the keyword case-insensitively against
	// vacancy names.
	VacanciesByKeyword(ctx context.Context, keyword string) ([]domain.VacancyListing, error)
}
