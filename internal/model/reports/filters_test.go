package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func scenario() []expense.Record {
	return []expense.Record{
		{ID: 1, Amount: 30, Description: "Lunch", Category: "Food & Dining", Date: "2024-01-15"},
		{ID: 2, Amount: 15, Description: "Bus", Category: "Transportation", Date: "2024-01-20"},
		{ID: 3, Amount: 45, Description: "Dinner", Category: "Food & Dining", Date: "2024-02-01"},
	}
}

func Test_ByMonth_ShouldSelectByPrefix(t *testing.T) {
	res := ByMonth(scenario(), 2024, time.January)

	require.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, int64(2), res[1].ID)

	assert.Empty(t, ByMonth(scenario(), 2023, time.January))
}

func Test_ByRecency_ShouldIncludeCutoffDay(t *testing.T) {
	today := time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC)

	res := ByRecency(scenario(), 21, today)
	require.Len(t, res, 2)
	assert.Equal(t, "Bus", res[0].Description)
	assert.Equal(t, "Dinner", res[1].Description)

	assert.Len(t, ByRecency(scenario(), 9, today), 1)
	assert.Empty(t, ByRecency(scenario(), 8, today))
}

func Test_ByKeyword_ShouldMatchCaseInsensitive(t *testing.T) {
	res := ByKeyword(scenario(), "bus")
	require.Len(t, res, 1)
	assert.Equal(t, int64(2), res[0].ID)

	res = ByKeyword(scenario(), "FOOD")
	require.Len(t, res, 2)
	assert.Equal(t, "Dinner", res[0].Description, "newest date first")
	assert.Equal(t, "Lunch", res[1].Description)

	assert.Empty(t, ByKeyword(scenario(), "rent"))
}

func Test_Filters_ShouldNotMutateInput(t *testing.T) {
	in := scenario()
	_ = ByKeyword(in, "n")
	assert.Equal(t, scenario(), in)
}

func Test_Since_ShouldCompareCalendarDays(t *testing.T) {
	res := Since(scenario(), time.Date(2024, 1, 20, 18, 30, 0, 0, time.UTC))

	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
	assert.Equal(t, int64(3), res[1].ID)

	assert.Len(t, Since(scenario(), time.Time{}), 3)
}
