package domain

import "strings"

// FilterByKeyword returns the vacancies whose name contains the keyword,
// case-insensitively, preserving input order.
func FilterByKeyword(vacancies []Vacancy, keyword string) []Vacancy {
	kw := strings.ToLower(keyword)
	out := make([]Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if strings.Contains(strings.ToLower(v.Name), kw) {
			out = append(out, v)
		}
	}
	return out
}

// FilterBySalaryRange keeps vacancies whose declared salary range overlaps
// [from, to]. Either bound of the requested range may be nil. Vacancies
// with no salary information at all are always dropped. A vacancy with
// only a lower bound passes a ceiling check as long as that lower bound
// does not exceed the ceiling: an overlap test, not containment.
func FilterBySalaryRange(vacancies []Vacancy, from, to *int) []Vacancy {
	out := make([]Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if v.SalaryFrom == nil && v.SalaryTo == nil {
			continue
		}
		if from != nil && (v.SalaryTo == nil || *v.SalaryTo < *from) {
			continue
		}
		if to != nil && (v.SalaryFrom == nil || *v.SalaryFrom > *to) {
			continue
		}
		out = append(out, v)
	}
	return out
}
