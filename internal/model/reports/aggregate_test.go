package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_TotalsByCategory_ShouldSumWithoutZeroFill(t *testing.T) {
	totals := TotalsByCategory(scenario())

	assert.Equal(t, map[string]float64{
		"Food & Dining":  75,
		"Transportation": 15,
	}, totals)
}

func Test_TotalsByCategory_ShouldPreserveGrandTotal(t *testing.T) {
	records := []expense.Record{
		{Amount: 0.1, Category: "A"}, {Amount: 0.2, Category: "B"},
		{Amount: 0.3, Category: "A"}, {Amount: 12.34, Category: "C"},
	}
	var want float64
	for _, rec := range records {
		want += rec.Amount
	}
	var got float64
	for _, v := range TotalsByCategory(records) {
		got += v
	}
	assert.InDelta(t, want, got, 1e-9)
}

func Test_TotalsByMonth(t *testing.T) {
	assert.Equal(t, map[string]float64{
		"2024-01": 45,
		"2024-02": 45,
	}, TotalsByMonth(scenario()))
}

func Test_TotalsByDay_ShouldZeroFillWholeRange(t *testing.T) {
	dateRange := DateRange(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), 7)
	require.Len(t, dateRange, 8)
	assert.Equal(t, "2024-01-14", dateRange[0])
	assert.Equal(t, "2024-01-21", dateRange[7])

	totals := TotalsByDay(scenario(), dateRange)
	assert.Len(t, totals, len(dateRange))
	assert.Equal(t, 30.0, totals["2024-01-15"])
	assert.Equal(t, 15.0, totals["2024-01-20"])
	assert.Equal(t, 0.0, totals["2024-01-16"])
	assert.NotContains(t, totals, "2024-02-01")

	empty := TotalsByDay(nil, dateRange)
	assert.Len(t, empty, len(dateRange))
}

func Test_Series_ShouldFollowKeyOrder(t *testing.T) {
	res := Series(map[string]float64{"b": 2}, []string{"a", "b", "c"})
	assert.Equal(t, []Total{{"a", 0}, {"b", 2}, {"c", 0}}, res)
}

func Test_SummaryStats(t *testing.T) {
	stats, err := SummaryStats(scenario())
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 90, Count: 3, Average: 30}, stats)

	_, err = SummaryStats(nil)
	assert.ErrorIs(t, err, ErrNoExpenses)
}

func Test_SortByAmount_ShouldBreakTiesByKey(t *testing.T) {
	res := SortByAmount(map[string]float64{"b": 10, "a": 10, "c": 50})
	assert.Equal(t, []Total{{"c", 50}, {"a", 10}, {"b", 10}}, res)
}

func Test_LastMonths_ShouldPickLatestChronologically(t *testing.T) {
	totals := map[string]float64{
		"2023-11": 1, "2023-12": 2, "2024-01": 3, "2024-02": 4,
	}

	res := LastMonths(totals, 3)
	assert.Equal(t, []Total{{"2023-12", 2}, {"2024-01", 3}, {"2024-02", 4}}, res)
	assert.Len(t, LastMonths(totals, 10), 4)
	assert.Empty(t, LastMonths(totals, 0))
}

func Test_Shares_ShouldSumToHundred(t *testing.T) {
	shares := Shares([]Total{{"a", 1}, {"b", 1}, {"c", 1}})
	var sum float64
	for _, s := range shares {
		assert.Equal(t, 33.3, s.Percent)
		sum += s.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(shares)))

	shares = Shares(SortByAmount(TotalsByCategory(scenario())))
	require.Len(t, shares, 2)
	assert.Equal(t, 83.3, shares[0].Percent)
	assert.Equal(t, 16.7, shares[1].Percent)
	assert.InDelta(t, 100.0, shares[0].Percent+shares[1].Percent, 0.1)
}

func Test_Shares_OnZeroSum_ShouldNotDivide(t *testing.T) {
	shares := Shares([]Total{{"a", 0}})
	assert.Equal(t, 0.0, shares[0].Percent)
}
