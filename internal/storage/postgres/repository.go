package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/hh-scout/internal/domain"
	"github.com/avoronova/hh-scout/internal/repository"
)

// Ensure VacancyRepository implements repository.VacancyRepository
var _ repository.VacancyRepository = (*VacancyRepository)(nil)

// VacancyRepository implements repository.VacancyRepository with PostgreSQL
type VacancyRepository struct {
	pool *pgxpool.Pool
}

// NewVacancyRepository creates a VacancyRepository over a connection pool
func NewVacancyRepository(pool *pgxpool.Pool) *VacancyRepository {
	return &VacancyRepository{pool: pool}
}

const upsertCompanySQL = `
INSERT INTO companies (company_id, name, site_url, open_vacancies)
VALUES ($1, $2, $3, $4)
ON CONFLICT (company_id) DO UPDATE
SET name = EXCLUDED.name,
    site_url = EXCLUDED.site_url,
    open_vacancies = EXCLUDED.open_vacancies`

// UpsertCompany creates or refreshes a company row keyed by external id.
func (r *VacancyRepository) UpsertCompany(ctx context.Context, employer domain.Employer) error {
	_, err := r.pool.Exec(ctx, upsertCompanySQL,
		employer.ID, employer.Name, employer.SiteURL, employer.OpenVacancies,
	)
	if err != nil {
		return fmt.Errorf("upsert company %d: %w", employer.ID, err)
	}
	return nil
}

const insertVacancySQL = `
INSERT INTO vacancies
	(vacancy_id, company_id, name, salary_from, salary_to, currency,
	 area, experience, employment_type, description, url, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (vacancy_id) DO NOTHING`

// InsertVacancy stores a vacancy once; a pre-existing external id wins.
func (r *VacancyRepository) InsertVacancy(ctx context.Context, v domain.Vacancy) (bool, error) {
	tag, err := r.pool.Exec(ctx, insertVacancySQL,
		v.ID, v.EmployerID, v.Name, v.SalaryFrom, v.SalaryTo, v.Currency,
		v.Area, v.Experience, v.Employment, v.Description, v.URL, v.PublishedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert vacancy %d: %w", v.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

const companiesWithCountsSQL = `
SELECT c.name, COUNT(v.id) AS vacancy_count
FROM companies c
LEFT JOIN vacancies v ON c.company_id = v.company_id
GROUP BY c.id, c.name
ORDER BY vacancy_count DESC`

func (r *VacancyRepository) CompaniesWithVacancyCounts(ctx context.Context) ([]domain.CompanyVacancyCount, error) {
	rows, err := r.pool.Query(ctx, companiesWithCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("query company counts: %w", err)
	}
	defer rows.Close()

	var out []domain.CompanyVacancyCount
	for rows.Next() {
		var row domain.CompanyVacancyCount
		if err := rows.Scan(&row.Company, &row.Count); err != nil {
			return nil, fmt.Errorf("scan company count: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

const listingColumns = `
SELECT c.name AS company_name,
       v.name AS vacancy_name,
       v.salary_from,
       v.salary_to,
       v.currency,
       v.url
FROM vacancies v
JOIN companies c ON v.company_id = c.company_id`

const allVacanciesSQL = listingColumns + `
ORDER BY c.name, v.name`

func (r *VacancyRepository) AllVacancies(ctx context.Context) ([]domain.VacancyListing, error) {
	return r.queryListings(ctx, allVacanciesSQL)
}

const avgSalarySQL = `
SELECT AVG((COALESCE(salary_from, 0) + COALESCE(salary_to, 0)) / 2)
FROM vacancies
WHERE salary_from IS NOT NULL OR salary_to IS NOT NULL`

// AverageSalary keeps the source metric exactly: an absent bound counts
// as zero before halving, which skews the midpoint low for one-sided
// ranges. Intentionally not corrected.
func (r *VacancyRepository) AverageSalary(ctx context.Context) (*float64, error) {
	var avg *float64
	if err := r.pool.QueryRow(ctx, avgSalarySQL).Scan(&avg); err != nil {
		return nil, fmt.Errorf("query average salary: %w", err)
	}
	return avg, nil
}

const aboveAverageSQL = listingColumns + `
WHERE (COALESCE(v.salary_from, 0) + COALESCE(v.salary_to, 0)) / 2 > (
	SELECT AVG((COALESCE(salary_from, 0) + COALESCE(salary_to, 0)) / 2)
	FROM vacancies
	WHERE salary_from IS NOT NULL OR salary_to IS NOT NULL
)
AND (v.salary_from IS NOT NULL OR v.salary_to IS NOT NULL)
ORDER BY (COALESCE(v.salary_from, 0) + COALESCE(v.salary_to, 0)) / 2 DESC`

func (r *VacancyRepository) VacanciesAboveAverageSalary(ctx context.Context) ([]domain.VacancyListing, error) {
	return r.queryListings(ctx, aboveAverageSQL)
}

const keywordSQL = listingColumns + `
WHERE v.name ILIKE $1
ORDER BY c.name, v.name`

func (r *VacancyRepository) VacanciesByKeyword(ctx context.Context, keyword string) ([]domain.VacancyListing, error) {
	return r.queryListings(ctx, keywordSQL, "%"+keyword+"%")
}

func (r *VacancyRepository) queryListings(ctx context.Context, sql string, args ...any) ([]domain.VacancyListing, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query vacancy listings: %w", err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VacancyListing, error) {
		var l domain.VacancyListing
		err := row.Scan(&l.Company, &l.Vacancy, &l.SalaryFrom, &l.SalaryTo, &l.Currency, &l.URL)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan vacancy listings: %w", err)
	}
	return out, nil
}
