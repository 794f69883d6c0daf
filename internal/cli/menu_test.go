package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/avoronova/hh-scout/internal/domain"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestFormatSalary(t *testing.T) {
	cur := strPtr("RUR")
	tests := []struct {
		name     string
		from, to *int
		currency *string
		want     string
	}{
		{"both bounds", intPtr(100), intPtr(200), cur, "100 - 200 RUR"},
		{"lower only", intPtr(100), nil, cur, "from 100 RUR"},
		{"upper only", nil, intPtr(200), cur, "up to 200 RUR"},
		{"no bounds", nil, nil, nil, "not specified"},
		{"no currency", intPtr(100), nil, nil, "from 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSalary(tt.from, tt.to, tt.currency); got != tt.want {
				t.Errorf("formatSalary = %q, want %q", got, tt.want)
			}
		})
	}
}

type stubRepo struct {
	counts   []domain.CompanyVacancyCount
	listings []domain.VacancyListing
	avg      *float64
	keyword  string
	err      error
}

func (s *stubRepo) UpsertCompany(context.Context, domain.Employer) error { return nil }

func (s *stubRepo) InsertVacancy(context.Context, domain.Vacancy) (bool, error) {
	return true, nil
}

func (s *stubRepo) CompaniesWithVacancyCounts(context.Context) ([]domain.CompanyVacancyCount, error) {
	return s.counts, s.err
}

func (s *stubRepo) AllVacancies(context.Context) ([]domain.VacancyListing, error) {
	return s.listings, s.err
}

func (s *stubRepo) AverageSalary(context.Context) (*float64, error) {
	return s.avg, s.err
}

func (s *stubRepo) VacanciesAboveAverageSalary(context.Context) ([]domain.VacancyListing, error) {
	return s.listings, s.err
}

func (s *stubRepo) VacanciesByKeyword(_ context.Context, keyword string) ([]domain.VacancyListing, error) {
	s.keyword = keyword
	return s.listings, s.err
}

type stubService struct {
	calls int
}

func (s *stubService) LoadEmployers(_ context.Context, ids []int) (domain.LoadReport, error) {
	s.calls++
	report := domain.LoadReport{}
	for _, id := range ids {
		report.Employers = append(report.Employers, domain.EmployerLoad{
			EmployerID: id, Name: fmt.Sprintf("employer-%d", id), Fetched: 1, Stored: 1,
		})
	}
	return report, nil
}

func runSession(t *testing.T, repo *stubRepo, svc *stubService, script string) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(svc, repo, []int{1740}, nil, WithIO(strings.NewReader(script), &out))
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestMenuShowsCompanyCounts(t *testing.T) {
	repo := &stubRepo{
		counts: []domain.CompanyVacancyCount{
			{Company: "Acme", Count: 3},
			{Company: "Quiet Corp", Count: 0},
		},
	}

	out := runSession(t, repo, &stubService{}, "2\n0\n")
	if !strings.Contains(out, "Acme") || !strings.Contains(out, "vacancies: 3") {
		t.Errorf("output missing company counts:\n%s", out)
	}
	if !strings.Contains(out, "Quiet Corp") {
		t.Errorf("zero-count company missing:\n%s", out)
	}
}

func TestMenuRunsLoad(t *testing.T) {
	svc := &stubService{}
	out := runSession(t, &stubRepo{}, svc, "1\n0\n")

	if svc.calls != 1 {
		t.Fatalf("load called %d times, want 1", svc.calls)
	}
	if !strings.Contains(out, "employer-1740") {
		t.Errorf("load report missing:\n%s", out)
	}
}

func TestMenuKeywordSearch(t *testing.T) {
	repo := &stubRepo{
		listings: []domain.VacancyListing{
			{Company: "Acme", Vacancy: "Python Developer"},
		},
	}

	out := runSession(t, repo, &stubService{}, "6\npython\n0\n")
	if repo.keyword != "python" {
		t.Errorf("keyword passed to repo = %q, want python", repo.keyword)
	}
	if !strings.Contains(out, "Python Developer") {
		t.Errorf("search results missing:\n%s", out)
	}
}

func TestMenuRejectsEmptyKeyword(t *testing.T) {
	repo := &stubRepo{}
	out := runSession(t, repo, &stubService{}, "6\n\n0\n")

	if repo.keyword != "" {
		t.Errorf("repository must not be queried with an empty keyword, got %q", repo.keyword)
	}
	if !strings.Contains(out, "keyword must not be empty") {
		t.Errorf("missing validation message:\n%s", out)
	}
}

func TestMenuSurvivesQueryFailure(t *testing.T) {
	repo := &stubRepo{err: fmt.Errorf("connection refused")}

	out := runSession(t, repo, &stubService{}, "3\n4\n0\n")
	if !strings.Contains(out, "no data") {
		t.Errorf("failures must render as no data:\n%s", out)
	}
	if !strings.Contains(out, "bye") {
		t.Errorf("loop must keep running past failures:\n%s", out)
	}
}

func TestMenuAverageSalary(t *testing.T) {
	out := runSession(t, &stubRepo{avg: floatPtr(123456.5)}, &stubService{}, "4\n0\n")
	if !strings.Contains(out, "123456.50 RUB") {
		t.Errorf("average salary missing:\n%s", out)
	}
}

func TestMenuUnknownOption(t *testing.T) {
	out := runSession(t, &stubRepo{}, &stubService{}, "9\n0\n")
	if !strings.Contains(out, "unknown option") {
		t.Errorf("missing unknown-option message:\n%s", out)
	}
}
