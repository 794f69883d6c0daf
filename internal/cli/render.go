package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/avoronova/hh-scout/internal/domain"
)

// formatSalary renders a salary range the way job boards print it.
func formatSalary(from, to *int, currency *string) string {
	cur := ""
	if currency != nil {
		cur = " " + *currency
	}
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("%d - %d%s", *from, *to, cur)
	case from != nil:
		return fmt.Sprintf("from %d%s", *from, cur)
	case to != nil:
		return fmt.Sprintf("up to %d%s", *to, cur)
	default:
		return "not specified"
	}
}

func renderHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render(title))
}

func renderCompanyCounts(w io.Writer, counts []domain.CompanyVacancyCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("no data"))
		return
	}
	for _, row := range counts {
		fmt.Fprintf(w, "%-40s | vacancies: %d\n", row.Company, row.Count)
	}
}

func renderListings(w io.Writer, listings []domain.VacancyListing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("no data"))
		return
	}
	fmt.Fprintf(w, "%s\n\n", styles.Muted.Render(fmt.Sprintf("%d vacancies", len(listings))))
	for _, l := range listings {
		url := ""
		if l.URL != nil {
			url = *l.URL
		}
		fmt.Fprintf(w, "%s %s\n", styles.Header.Render("Company:"), l.Company)
		fmt.Fprintf(w, "%s %s\n", styles.Header.Render("Vacancy:"), l.Vacancy)
		fmt.Fprintf(w, "%s %s\n", styles.Header.Render("Salary:"), formatSalary(l.SalaryFrom, l.SalaryTo, l.Currency))
		fmt.Fprintf(w, "%s %s\n", styles.Header.Render("Link:"), url)
		fmt.Fprintln(w, styles.Muted.Render(strings.Repeat("-", 60)))
	}
}

func renderLoadReport(w io.Writer, report domain.LoadReport) {
	loaded, stored := 0, 0
	for _, e := range report.Employers {
		if e.Skipped {
			fmt.Fprintln(w, styles.Error.Render(fmt.Sprintf("  employer %d skipped", e.EmployerID)))
			continue
		}
		loaded++
		stored += e.Stored
		fmt.Fprintf(w, "  %-30s fetched %d, stored %d\n", e.Name, e.Fetched, e.Stored)
	}
	fmt.Fprintln(w, styles.Success.Render(
		fmt.Sprintf("done: %d employers, %d new vacancies", loaded, stored),
	))
}
