package reports

import (
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

func fixedClock() time.Time {
	return time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC)
}

func newGenerator(m *minimock.Controller, records []expense.Record) *Generator {
	storage := mock.NewExpensesStorageMock(m)
	storage.RecordsMock.Return(records)
	return NewGenerator(storage, WithClock(fixedClock))
}

func Test_OnMonthlySummary_ShouldGroupAndSort(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	report, err := g.MonthlySummary(2024, time.January)
	require.NoError(m, err)

	assert.Equal(m, 45.0, report.Stats.Total)
	assert.Equal(m, 2, report.Stats.Count)
	assert.Equal(m, 22.5, report.Stats.Average)
	require.Len(m, report.Categories, 2)
	assert.Equal(m, "Food & Dining", report.Categories[0].Key)
	assert.Equal(m, 66.7, report.Categories[0].Percent)
	assert.Equal(m, "Transportation", report.Categories[1].Key)
	assert.Equal(m, 33.3, report.Categories[1].Percent)
}

func Test_OnMonthlySummary_ShouldReportEmptyMonth(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	_, err := g.MonthlySummary(2023, time.July)
	assert.ErrorIs(m, err, ErrNoExpenses)

	_, err = g.MonthlySummary(2024, 13)
	assert.Error(m, err)
}

func Test_OnCurrentPeriod_ShouldUseClock(t *testing.T) {
	m := minimock.NewController(t)
	g := NewGenerator(mock.NewExpensesStorageMock(m), WithClock(fixedClock))

	year, month := g.CurrentPeriod()
	assert.Equal(m, 2024, year)
	assert.Equal(m, time.February, month)
}

func Test_OnCategorySummary_ShouldUseTrailingWindow(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	report, err := g.CategorySummary(21)
	require.NoError(m, err)
	assert.Equal(m, 60.0, report.Total)
	require.Len(m, report.Categories, 2)
	assert.Equal(m, "Food & Dining", report.Categories[0].Key)
	assert.Equal(m, 75.0, report.Categories[0].Percent)

	_, err = g.CategorySummary(3)
	assert.ErrorIs(m, err, ErrNoExpenses)
}

func Test_OnTrends_ShouldCoverWholeHistory(t *testing.T) {
	m := minimock.NewController(t)
	records := append(scenario(), expense.Record{ID: 4, Amount: 100, Category: "Travel", Date: "2022-06-01"})
	g := newGenerator(m, records)

	report, err := g.Trends(6)
	require.NoError(m, err)
	assert.Equal(m, []Total{{"2022-06", 100}, {"2024-01", 45}, {"2024-02", 45}}, report.Points)

	report, err = g.Trends(1)
	require.NoError(m, err)
	assert.Equal(m, []Total{{"2024-02", 45}}, report.Points)

	empty := newGenerator(m, []expense.Record{})
	_, err = empty.Trends(6)
	assert.ErrorIs(m, err, ErrNoExpenses)
}

func Test_OnDaily_ShouldZeroFillEveryDay(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	report, err := g.Daily(30)
	require.NoError(m, err)
	require.Len(m, report.Points, 31)
	assert.Equal(m, "2024-01-11", report.Points[0].Key)
	assert.Equal(m, "2024-02-10", report.Points[30].Key)
	assert.Equal(m, 90.0, report.Total)

	byDay := map[string]float64{}
	for _, p := range report.Points {
		byDay[p.Key] = p.Amount
	}
	assert.Equal(m, 30.0, byDay["2024-01-15"])
	assert.Equal(m, 45.0, byDay["2024-02-01"])
	assert.Equal(m, 0.0, byDay["2024-01-16"])

	_, err = g.Daily(2)
	assert.ErrorIs(m, err, ErrNoExpenses)
}

func Test_OnPeriodStart_ShouldUseCalendarBoundaries(t *testing.T) {
	m := minimock.NewController(t)
	g := NewGenerator(mock.NewExpensesStorageMock(m), WithClock(fixedClock))

	// 2024-02-10 is a Saturday, the week began on Monday the 5th
	since, err := g.PeriodStart(PeriodWeek)
	require.NoError(m, err)
	assert.Equal(m, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), since)

	since, err = g.PeriodStart(PeriodMonth)
	require.NoError(m, err)
	assert.Equal(m, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), since)

	since, err = g.PeriodStart(PeriodYear)
	require.NoError(m, err)
	assert.Equal(m, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), since)

	since, err = g.PeriodStart(PeriodAll)
	require.NoError(m, err)
	assert.True(m, since.IsZero())

	_, err = g.PeriodStart("decade")
	assert.ErrorIs(m, err, ErrUnknownPeriod)
}

func Test_OnPeriodSummary_ShouldKeepOnlyCurrentPeriod(t *testing.T) {
	m := minimock.NewController(t)
	records := append(scenario(),
		expense.Record{ID: 4, Amount: 20, Category: "Shopping", Date: "2024-02-04"},
		expense.Record{ID: 5, Amount: 10, Category: "Groceries", Date: "2024-02-05"},
		expense.Record{ID: 6, Amount: 5, Category: "Groceries", Date: "2023-12-31"},
	)
	g := newGenerator(m, records)

	week, err := g.PeriodSummary(PeriodWeek)
	require.NoError(m, err)
	assert.Equal(m, 10.0, week.Total)
	assert.Equal(m, []Share{{Total{"Groceries", 10}, 100}}, week.Categories)

	month, err := g.PeriodSummary(PeriodMonth)
	require.NoError(m, err)
	assert.Equal(m, 75.0, month.Total)
	assert.Equal(m, "Food & Dining", month.Categories[0].Key)

	year, err := g.PeriodSummary(PeriodYear)
	require.NoError(m, err)
	assert.Equal(m, 120.0, year.Total)

	all, err := g.PeriodSummary(PeriodAll)
	require.NoError(m, err)
	assert.Equal(m, 125.0, all.Total)
}

func Test_OnPeriodSummary_ShouldReportEmptyWeek(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	_, err := g.PeriodSummary(PeriodWeek)
	assert.ErrorIs(m, err, ErrNoExpenses)
}

func Test_OnSearch(t *testing.T) {
	m := minimock.NewController(t)
	g := newGenerator(m, scenario())

	report, err := g.Search("bus")
	require.NoError(m, err)
	require.Len(m, report.Records, 1)
	assert.Equal(m, int64(2), report.Records[0].ID)

	_, err = g.Search("rent")
	assert.ErrorIs(m, err, ErrNoExpenses)
}

func Test_OnRecent_ShouldDelegateToStore(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	storage.
		RecordsMock.
		Return(scenario()).
		ListRecentMock.
		Inspect(func(limit int) {
			assert.Equal(m, 2, limit)
		}).
		Return(scenario()[1:])

	report, err := NewGenerator(storage, WithClock(fixedClock)).Recent(2)
	require.NoError(m, err)
	assert.Len(m, report.Records, 2)
	assert.Equal(m, uint64(1), storage.ListRecentAfterCounter())
}

func Test_OnRecentWithEmptyStore_ShouldNotList(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	storage.RecordsMock.Return(nil)

	_, err := NewGenerator(storage).Recent(5)
	assert.ErrorIs(m, err, ErrNoExpenses)
	assert.Equal(m, uint64(0), storage.ListRecentAfterCounter())
}
