package reports

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// ErrNoExpenses is returned when a report has no records to work on.
var ErrNoExpenses = errors.New("no expenses")

// Total is one grouped amount: the key is a category, a YYYY-MM month or a YYYY-MM-DD day.
type Total struct {
	Key    string
	Amount float64
}

type Share struct {
	Total
	Percent float64
}

type Stats struct {
	Total   float64
	Count   int
	Average float64
}

func groupBy(records []expense.Record, key func(expense.Record) string) map[string]float64 {
	m := make(map[string]float64)
	for _, rec := range records {
		m[key(rec)] += rec.Amount
	}
	return m
}

// TotalsByCategory sums per category. Categories without records are absent.
func TotalsByCategory(records []expense.Record) map[string]float64 {
	return groupBy(records, func(rec expense.Record) string {
		return rec.Category
	})
}

// TotalsByMonth sums per YYYY-MM. Months without records are absent.
func TotalsByMonth(records []expense.Record) map[string]float64 {
	return groupBy(records, expense.Record.Month)
}

// TotalsByDay sums per date over dateRange and zero-fills days without records.
// Records outside the range are ignored.
func TotalsByDay(records []expense.Record, dateRange []string) map[string]float64 {
	m := make(map[string]float64, len(dateRange))
	for _, day := range dateRange {
		m[day] = 0
	}
	for _, rec := range records {
		if _, ok := m[rec.Date]; ok {
			m[rec.Date] += rec.Amount
		}
	}
	return m
}

// DateRange lists days+1 consecutive dates starting at from.
func DateRange(from time.Time, days int) []string {
	if days < 0 {
		return []string{}
	}
	res := make([]string, 0, days+1)
	for i := 0; i <= days; i++ {
		res = append(res, from.AddDate(0, 0, i).Format(expense.DateLayout))
	}
	return res
}

// Series orders totals along keys, keys missing from totals get zero.
func Series(totals map[string]float64, keys []string) []Total {
	res := make([]Total, 0, len(keys))
	for _, key := range keys {
		res = append(res, Total{Key: key, Amount: totals[key]})
	}
	return res
}

// SummaryStats requires at least one record.
func SummaryStats(records []expense.Record) (Stats, error) {
	if len(records) == 0 {
		return Stats{}, errors.Wrap(ErrNoExpenses, "summary stats")
	}
	var total float64
	for _, rec := range records {
		total += rec.Amount
	}
	return Stats{
		Total:   total,
		Count:   len(records),
		Average: total / float64(len(records)),
	}, nil
}

// SortByAmount orders totals by amount descending, ties by key.
func SortByAmount(totals map[string]float64) []Total {
	res := make([]Total, 0, len(totals))
	for key, amount := range totals {
		res = append(res, Total{Key: key, Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount != res[j].Amount {
			return res[i].Amount > res[j].Amount
		}
		return res[i].Key < res[j].Key
	})
	return res
}

// LastMonths picks the n latest month keys and returns them oldest first.
func LastMonths(totals map[string]float64, n int) []Total {
	if n <= 0 {
		return []Total{}
	}
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > n {
		keys = keys[:n]
	}
	sort.Strings(keys)
	return Series(totals, keys)
}

// Shares computes each total's percentage of the grouping's own sum,
// rounded to one decimal.
func Shares(totals []Total) []Share {
	sum := Sum(totals)
	res := make([]Share, 0, len(totals))
	for _, t := range totals {
		share := Share{Total: t}
		if sum != 0 {
			share.Percent = roundTo(t.Amount/sum*100, 1)
		}
		res = append(res, share)
	}
	return res
}

func Sum(totals []Total) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.Amount
	}
	return sum
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
