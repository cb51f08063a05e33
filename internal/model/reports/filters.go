package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// ByMonth selects records whose date starts with YYYY-MM.
func ByMonth(records []expense.Record, year int, month time.Month) []expense.Record {
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if strings.HasPrefix(rec.Date, prefix) {
			res = append(res, rec)
		}
	}
	return res
}

// ByRecency selects records dated on or after the day days before now.
// ISO dates compare correctly as strings.
func ByRecency(records []expense.Record, days int, now time.Time) []expense.Record {
	cutoff := now.AddDate(0, 0, -days).Format(expense.DateLayout)
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if rec.Date >= cutoff {
			res = append(res, rec)
		}
	}
	return res
}

// Since selects records dated on or after the calendar day of from.
func Since(records []expense.Record, from time.Time) []expense.Record {
	cutoff := from.Format(expense.DateLayout)
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if rec.Date >= cutoff {
			res = append(res, rec)
		}
	}
	return res
}

// ByKeyword matches description or category case-insensitively, newest date first.
func ByKeyword(records []expense.Record, keyword string) []expense.Record {
	keyword = strings.ToLower(keyword)
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Description), keyword) ||
			strings.Contains(strings.ToLower(rec.Category), keyword) {
			res = append(res, rec)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date > res[j].Date
	})
	return res
}
