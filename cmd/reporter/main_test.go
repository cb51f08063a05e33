package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/chart"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type defaultsStub struct{}

func (defaultsStub) RecentLimit() int  { return 10 }
func (defaultsStub) CategoryDays() int { return 30 }
func (defaultsStub) TrendMonths() int  { return 6 }
func (defaultsStub) DailyDays() int    { return 14 }

func clock() time.Time {
	return time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC)
}

func newGenerator(t *testing.T) *reports.Generator {
	t.Helper()
	store, err := storage.New(context.Background(), storage.NewInMemStorage(
		expense.Record{ID: 1, Amount: 30, Description: "Lunch", Category: "Food & Dining", Date: "2024-01-15"},
		expense.Record{ID: 2, Amount: 15, Description: "Bus", Category: "Transportation", Date: "2024-01-20"},
		expense.Record{ID: 3, Amount: 45, Description: "Dinner", Category: "Food & Dining", Date: "2024-02-01"},
	))
	require.NoError(t, err)
	return reports.NewGenerator(store, reports.WithClock(clock))
}

func Test_ApplyDefaults(t *testing.T) {
	opts := options{report: "daily"}
	applyDefaults(&opts, defaultsStub{})
	assert.Equal(t, 14, opts.days)
	assert.Equal(t, 6, opts.months)
	assert.Equal(t, 10, opts.limit)

	opts = options{report: "categories", days: 7}
	applyDefaults(&opts, defaultsStub{})
	assert.Equal(t, 7, opts.days)
}

func Test_Run_Monthly(t *testing.T) {
	text, kind, title, totals, err := run(newGenerator(t), options{report: "monthly", year: 2024, month: 1})
	require.NoError(t, err)

	assert.Contains(t, text, "--- January 2024 Summary ---")
	assert.Equal(t, chart.KindShare, kind)
	assert.Equal(t, "January 2024", title)
	assert.Equal(t, []reports.Total{{Key: "Food & Dining", Amount: 30}, {Key: "Transportation", Amount: 15}}, totals)
}

func Test_Run_Trends(t *testing.T) {
	_, kind, _, totals, err := run(newGenerator(t), options{report: "trends", months: 6})
	require.NoError(t, err)

	assert.Equal(t, chart.KindTrend, kind)
	assert.Len(t, totals, 2)
}

func Test_Run_Search(t *testing.T) {
	text, _, _, totals, err := run(newGenerator(t), options{report: "search", keyword: "din"})
	require.NoError(t, err)

	assert.Contains(t, text, "Dinner")
	assert.Nil(t, totals)

	_, _, _, _, err = run(newGenerator(t), options{report: "search"})
	assert.Error(t, err)
}

func Test_Run_Errors(t *testing.T) {
	_, _, _, _, err := run(newGenerator(t), options{report: "daily", days: 2})
	assert.ErrorIs(t, err, reports.ErrNoExpenses)

	_, _, _, _, err = run(newGenerator(t), options{report: "weekly"})
	assert.Error(t, err)
}

func Test_Run_Period(t *testing.T) {
	text, kind, title, totals, err := run(newGenerator(t), options{report: "period", period: reports.PeriodMonth})
	require.NoError(t, err)

	assert.Contains(t, text, "Total Spent: $45.00")
	assert.Equal(t, chart.KindCategory, kind)
	assert.Equal(t, "This month (since 2024-02-01)", title)
	assert.Equal(t, []reports.Total{{Key: "Food & Dining", Amount: 45}}, totals)

	_, _, _, _, err = run(newGenerator(t), options{report: "period", period: reports.PeriodWeek})
	assert.ErrorIs(t, err, reports.ErrNoExpenses)

	_, _, _, _, err = run(newGenerator(t), options{report: "period", period: "decade"})
	assert.ErrorIs(t, err, reports.ErrUnknownPeriod)
}
