package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/chart"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

const (
	addChoice      = "1"
	viewChoice     = "2"
	monthlyChoice  = "3"
	categoryChoice = "4"
	searchChoice   = "5"
	deleteChoice   = "6"
	trendsChoice   = "7"
	dailyChoice    = "8"
	exitChoice     = "9"
)

var menuItems = []string{
	"1. Add Expense",
	"2. View Recent Expenses",
	"3. Monthly Summary (with Chart)",
	"4. Category Summary (with Bar Chart)",
	"5. Search Expenses",
	"6. Delete Expense",
	"7. Spending Trends (with Line Chart)",
	"8. Daily Expenses Chart",
	"9. Exit",
}

const (
	welcomeMessage         = "Welcome to Personal Expense Tracker with Visualizations!"
	goodbyeMessage         = "Thank you for using Personal Expense Tracker!"
	invalidChoiceMessage   = "Invalid choice. Please try again."
	somethingWrongMessage  = "Sorry, something wrong happened:"
	cannotDrawChartMessage = "Cannot draw chart:"

	invalidAmountMessage  = "Invalid amount. Please enter a valid number."
	invalidDateMessage    = "Invalid date format. Using today's date."
	invalidNumbersMessage = "Invalid input. Please enter valid numbers."
	invalidMonthMessage   = "Invalid month. Please enter a number between 1 and 12."
	invalidIDMessage      = "Invalid expense ID."
	noExpensesMessage     = "No expenses recorded yet."
)

func (s *Service) handleAdd(ctx context.Context) error {
	raw, _ := s.prompt("Enter amount: $")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.println(invalidAmountMessage)
		return nil
	}
	description, _ := s.prompt("Enter description: ")

	s.println("\nAvailable Categories:")
	for i, cat := range expense.Categories() {
		s.printf("%d. %s\n", i+1, cat)
	}
	rawCat, _ := s.prompt("Select category (number): ")
	category := expense.Other
	if idx, convErr := strconv.Atoi(rawCat); convErr == nil {
		category = expense.CategoryFromIndex(idx)
	}

	date, _ := s.prompt("Enter date (YYYY-MM-DD) or press Enter for today: ")
	if date != "" {
		if _, err = time.Parse(expense.DateLayout, date); err != nil {
			s.println(invalidDateMessage)
			date = ""
		}
	}

	rec, err := s.store.Add(ctx, amount, description, string(category), date)
	if errors.Is(err, storage.ErrInvalidAmount) {
		s.println(invalidAmountMessage)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle add")
	}
	s.printf("✓ Expense added: $%.2f for %s\n", rec.Amount, rec.Description)
	return nil
}

func (s *Service) handleView(_ context.Context) error {
	raw, _ := s.prompt(fmt.Sprintf("Number of recent expenses to show (default %d): ", s.config.RecentLimit()))
	limit := intOrDefault(raw, s.config.RecentLimit())

	report, err := s.generator.Recent(limit)
	if errors.Is(err, reports.ErrNoExpenses) {
		s.println(noExpensesMessage)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle view")
	}
	s.println("\n" + reports.FormatRecent(report))
	return nil
}

func (s *Service) handleMonthly(_ context.Context) error {
	defYear, defMonth := s.generator.CurrentPeriod()

	raw, _ := s.prompt(fmt.Sprintf("Enter year (default %d): ", defYear))
	year, ok := intOrFallback(raw, defYear)
	if !ok {
		s.println(invalidNumbersMessage)
		return nil
	}
	raw, _ = s.prompt(fmt.Sprintf("Enter month (1-12, default %d): ", int(defMonth)))
	month, ok := intOrFallback(raw, int(defMonth))
	if !ok {
		s.println(invalidNumbersMessage)
		return nil
	}
	if month < 1 || month > 12 {
		s.println(invalidMonthMessage)
		return nil
	}

	report, err := s.generator.MonthlySummary(year, time.Month(month))
	if errors.Is(err, reports.ErrNoExpenses) {
		s.printf("No expenses found for %s\n", reports.PeriodTitle(year, time.Month(month)))
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle monthly")
	}
	s.println("\n" + reports.FormatMonthly(report))
	s.drawChart(chart.KindShare, reports.PeriodTitle(year, time.Month(month)), sharesToTotals(report.Categories))
	return nil
}

func (s *Service) handleCategory(_ context.Context) error {
	raw, _ := s.prompt(fmt.Sprintf("Number of days to analyze (default %d): ", s.config.CategoryDays()))
	days := intOrDefault(raw, s.config.CategoryDays())

	report, err := s.generator.CategorySummary(days)
	if errors.Is(err, reports.ErrNoExpenses) {
		s.printf("No expenses found in the last %d days.\n", days)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle category")
	}
	s.println("\n" + reports.FormatCategory(report))
	s.drawChart(chart.KindCategory, fmt.Sprintf("Last %d Days", days), sharesToTotals(report.Categories))
	return nil
}

func (s *Service) handleSearch(_ context.Context) error {
	keyword, _ := s.prompt("Enter search keyword: ")
	if keyword == "" {
		return nil
	}

	report, err := s.generator.Search(keyword)
	if errors.Is(err, reports.ErrNoExpenses) {
		s.printf("No expenses found containing '%s'\n", keyword)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle search")
	}
	s.println("\n" + reports.FormatSearch(report))
	return nil
}

func (s *Service) handleDelete(ctx context.Context) error {
	raw, _ := s.prompt("Enter expense ID to delete: ")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.println(invalidIDMessage)
		return nil
	}

	rec, found := s.store.Find(id)
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "handle delete")
	}
	if !deleted || !found {
		s.printf("Expense with ID %d not found.\n", id)
		return nil
	}
	s.printf("✓ Deleted expense: $%.2f for %s\n", rec.Amount, rec.Description)
	return nil
}

func (s *Service) handleTrends(_ context.Context) error {
	raw, _ := s.prompt(fmt.Sprintf("Number of months to analyze (default %d): ", s.config.TrendMonths()))
	months := intOrDefault(raw, s.config.TrendMonths())

	report, err := s.generator.Trends(months)
	if errors.Is(err, reports.ErrNoExpenses) {
		// an empty history still gets its header
		report, err = &reports.TrendReport{Months: months}, nil
	}
	if err != nil {
		return errors.Wrap(err, "handle trends")
	}
	s.println("\n" + reports.FormatTrends(report))
	// a single point is not a trend
	if len(report.Points) > 1 {
		s.drawChart(chart.KindTrend, fmt.Sprintf("Last %d months", months), report.Points)
	}
	return nil
}

func (s *Service) handleDaily(_ context.Context) error {
	raw, _ := s.prompt(fmt.Sprintf("Number of days to visualize (default %d): ", s.config.DailyDays()))
	days := intOrDefault(raw, s.config.DailyDays())

	report, err := s.generator.Daily(days)
	if errors.Is(err, reports.ErrNoExpenses) {
		s.printf("No expenses found in the last %d days.\n", days)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "handle daily")
	}
	s.println("\n" + reports.FormatDaily(report))
	s.drawChart(chart.KindDaily, fmt.Sprintf("Last %d Days", days), report.Points)
	return nil
}

func (s *Service) handleExit(_ context.Context) error {
	return errQuit
}

// intOrDefault falls back to def on empty or malformed input.
func intOrDefault(raw string, def int) int {
	v, _ := intOrFallback(raw, def)
	return v
}

// intOrFallback returns def for empty input and false for malformed input.
func intOrFallback(raw string, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, false
	}
	return v, true
}

func sharesToTotals(shares []reports.Share) []reports.Total {
	res := make([]reports.Total, 0, len(shares))
	for _, s := range shares {
		res = append(res, s.Total)
	}
	return res
}
