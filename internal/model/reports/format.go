package reports

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// MonthLabel turns "2024-01" into "January 2024".
func MonthLabel(key string) string {
	t, err := time.Parse(expense.MonthLayout, key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// ShortMonthLabel turns "2024-01" into "Jan 2024".
func ShortMonthLabel(key string) string {
	t, err := time.Parse(expense.MonthLayout, key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

func PeriodTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

func FormatRecord(rec expense.Record) string {
	return fmt.Sprintf("ID: %d | $%.2f | %s | %s | %s",
		rec.ID, rec.Amount, rec.Category, rec.Description, rec.Date)
}

func formatShare(s Share) string {
	return fmt.Sprintf("%s: $%.2f (%.1f%%)", s.Key, s.Amount, s.Percent)
}

func FormatMonthly(r *MonthlyReport) string {
	res := []string{
		fmt.Sprintf("--- %s Summary ---", PeriodTitle(r.Year, r.Month)),
		fmt.Sprintf("Total Expenses: $%.2f", r.Stats.Total),
		fmt.Sprintf("Number of Transactions: %d", r.Stats.Count),
		fmt.Sprintf("Average per Transaction: $%.2f", r.Stats.Average),
		"",
		"By Category:",
	}
	for _, s := range r.Categories {
		res = append(res, "  "+formatShare(s))
	}
	return strings.Join(res, "\n")
}

func FormatCategory(r *CategoryReport) string {
	res := []string{
		fmt.Sprintf("--- Category Summary (Last %d days) ---", r.Days),
		fmt.Sprintf("Total Spent: $%.2f", r.Total),
	}
	for _, s := range r.Categories {
		res = append(res, formatShare(s))
	}
	return strings.Join(res, "\n")
}

// PeriodLabel is the chart title and header of a period summary.
func PeriodLabel(r *PeriodReport) string {
	if r.Period == PeriodAll {
		return "All Time"
	}
	return fmt.Sprintf("This %s (since %s)", r.Period, r.Since.Format(expense.DateLayout))
}

func FormatPeriod(r *PeriodReport) string {
	res := []string{
		fmt.Sprintf("--- Spending %s ---", PeriodLabel(r)),
		fmt.Sprintf("Total Spent: $%.2f", r.Total),
		"",
		"By Category:",
	}
	for _, s := range r.Categories {
		res = append(res, "  "+formatShare(s))
	}
	return strings.Join(res, "\n")
}

func FormatTrends(r *TrendReport) string {
	res := []string{fmt.Sprintf("--- Spending Trends (Last %d months) ---", r.Months)}
	for _, p := range r.Points {
		res = append(res, fmt.Sprintf("%s: $%.2f", MonthLabel(p.Key), p.Amount))
	}
	return strings.Join(res, "\n")
}

// FormatDaily lists only days with spending, the chart shows the full axis.
func FormatDaily(r *DailyReport) string {
	res := []string{fmt.Sprintf("--- Daily Expenses (Last %d days) ---", r.Days)}
	for _, p := range r.Points {
		if p.Amount > 0 {
			res = append(res, fmt.Sprintf("%s: $%.2f", p.Key, p.Amount))
		}
	}
	res = append(res, "", fmt.Sprintf("Total: $%.2f", r.Total))
	return strings.Join(res, "\n")
}

func FormatSearch(r *SearchReport) string {
	res := []string{fmt.Sprintf("--- Search Results for '%s' ---", r.Keyword)}
	for _, rec := range r.Records {
		res = append(res, FormatRecord(rec))
	}
	return strings.Join(res, "\n")
}

func FormatRecent(r *RecentReport) string {
	res := []string{fmt.Sprintf("--- Recent Expenses (Last %d) ---", r.Limit)}
	for _, rec := range r.Records {
		res = append(res, FormatRecord(rec))
	}
	return strings.Join(res, "\n")
}
