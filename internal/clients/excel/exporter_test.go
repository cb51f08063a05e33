package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_Export_ShouldWriteAllSheets(t *testing.T) {
	ts := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	records := []expense.Record{
		{ID: 1, Amount: 30, Description: "Lunch", Category: "Food & Dining", Date: "2024-01-15", Timestamp: ts},
		{ID: 2, Amount: 15, Description: "Bus", Category: "Transportation", Date: "2024-01-20", Timestamp: ts},
		{ID: 3, Amount: 45, Description: "Dinner", Category: "Food & Dining", Date: "2024-02-01", Timestamp: ts},
	}
	path := filepath.Join(t.TempDir(), "expenses.xlsx")

	require.NoError(t, Export(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{expensesSheet, categoriesSheet, monthsSheet}, f.GetSheetList())

	props, err := f.GetAppProps()
	require.NoError(t, err)
	assert.Equal(t, "Expense Tracker", props.Application)

	rows, err := f.GetRows(expensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Bus", rows[2][3])

	rows, err = f.GetRows(categoriesSheet)
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", rows[1][0])
	assert.Equal(t, "75", rows[1][1])
	assert.Equal(t, "Transportation", rows[2][0])
	assert.Equal(t, "Total", rows[4][0])
	assert.Equal(t, "90", rows[4][1])

	rows, err = f.GetRows(monthsSheet)
	require.NoError(t, err)
	assert.Equal(t, "2024-01", rows[1][0])
	assert.Equal(t, "2024-02", rows[2][0])
}

func Test_Export_OnNoRecords_ShouldStillWriteHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, Export(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(expensesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
