// Package cli implements the interactive analytics console.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/avoronova/hh-scout/internal/domain/ingest"
	"github.com/avoronova/hh-scout/internal/repository"
	"github.com/avoronova/hh-scout/pkg/logging"
)

const menuText = `
1. Load companies and vacancies from hh.ru
2. Companies and their vacancy counts
3. All vacancies
4. Average salary
5. Vacancies with above-average salary
6. Search vacancies by keyword
0. Exit
`

// Menu drives the numbered read-a-line menu loop. Input and output are
// injectable so the loop is testable with scripted sessions.
type Menu struct {
	service     ingest.Service
	repo        repository.VacancyRepository
	employerIDs []int
	log         *logging.Logger
	in          io.Reader
	out         io.Writer
}

// Option configures Menu
type Option func(*Menu)

// WithIO redirects the menu's input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(m *Menu) {
		m.in = in
		m.out = out
	}
}

// NewMenu builds the console over the loader service and the repository.
func NewMenu(
	service ingest.Service,
	repo repository.VacancyRepository,
	employerIDs []int,
	log *logging.Logger,
	opts ...Option,
) *Menu {
	if log == nil {
		log = logging.Nop()
	}
	m := &Menu{
		service:     service,
		repo:        repo,
		employerIDs: employerIDs,
		log:         log.Named("console"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run reads one menu choice per iteration until exit or EOF. Data and
// storage failures are logged and shown as "no data"; they never abort
// the loop.
func (m *Menu) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(m.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		renderHeader(m.out, "hh-scout: vacancy analytics")
		fmt.Fprint(m.out, menuText)
		fmt.Fprint(m.out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(m.out)
			return scanner.Err()
		}

		switch choice := strings.TrimSpace(scanner.Text()); choice {
		case "1":
			m.runLoad(ctx)
		case "2":
			m.showCompanyCounts(ctx)
		case "3":
			m.showAllVacancies(ctx)
		case "4":
			m.showAverageSalary(ctx)
		case "5":
			m.showAboveAverage(ctx)
		case "6":
			m.searchByKeyword(ctx, scanner)
		case "0":
			fmt.Fprintln(m.out, "bye")
			return nil
		default:
			fmt.Fprintln(m.out, styles.Error.Render("unknown option, try again"))
		}
	}
}

func (m *Menu) runLoad(ctx context.Context) {
	renderHeader(m.out, "Loading companies and vacancies")
	fmt.Fprintf(m.out, "collecting %d employers, this may take a while...\n", len(m.employerIDs))

	report, err := m.service.LoadEmployers(ctx, m.employerIDs)
	if err != nil {
		m.log.Warn("load interrupted", "err", err)
	}
	renderLoadReport(m.out, report)
}

func (m *Menu) showCompanyCounts(ctx context.Context) {
	renderHeader(m.out, "Companies and vacancy counts")
	counts, err := m.repo.CompaniesWithVacancyCounts(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	renderCompanyCounts(m.out, counts)
}

func (m *Menu) showAllVacancies(ctx context.Context) {
	renderHeader(m.out, "All vacancies")
	listings, err := m.repo.AllVacancies(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	renderListings(m.out, listings)
}

func (m *Menu) showAverageSalary(ctx context.Context) {
	renderHeader(m.out, "Average salary")
	avg, err := m.repo.AverageSalary(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if avg == nil {
		fmt.Fprintln(m.out, styles.Muted.Render("no data"))
		return
	}
	fmt.Fprintf(m.out, "average salary: %.2f RUB\n", *avg)
}

func (m *Menu) showAboveAverage(ctx context.Context) {
	renderHeader(m.out, "Vacancies with above-average salary")
	listings, err := m.repo.VacanciesAboveAverageSalary(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	renderListings(m.out, listings)
}

func (m *Menu) searchByKeyword(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprint(m.out, "keyword: ")
	if !scanner.Scan() {
		return
	}
	keyword := strings.TrimSpace(scanner.Text())
	if keyword == "" {
		fmt.Fprintln(m.out, styles.Error.Render("keyword must not be empty"))
		return
	}

	renderHeader(m.out, fmt.Sprintf("Vacancies matching %q", keyword))
	listings, err := m.repo.VacanciesByKeyword(ctx, keyword)
	if err != nil {
		m.fail(err)
		return
	}
	renderListings(m.out, listings)
}

func (m *Menu) fail(err error) {
	m.log.Warn("query failed", "err", err)
	fmt.Fprintln(m.out, styles.Muted.Render("no data"))
}
