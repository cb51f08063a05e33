package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_SQLiteStorage_ShouldRoundTripSnapshots(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.db")

	st, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	snap, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Records)
	assert.Zero(t, snap.NextID)

	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	want := Snapshot{
		NextID: 3,
		Records: []expense.Record{
			{ID: 1, Amount: 30, Description: "Lunch", Category: "Food & Dining", Date: "2024-01-15", Timestamp: ts},
			{ID: 2, Amount: 15, Description: "Bus", Category: "Transportation", Date: "2024-01-20", Timestamp: ts.Add(time.Hour)},
		},
	}
	require.NoError(t, st.Save(ctx, want))

	// a second save replaces, it does not append
	want.Records = want.Records[1:]
	want.NextID = 4
	require.NoError(t, st.Save(ctx, want))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.NextID)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Bus", got.Records[0].Description)
	assert.True(t, want.Records[0].Timestamp.Equal(got.Records[0].Timestamp))
}

func Test_SQLiteStorage_ShouldBackAStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.db")

	st, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	s, err := New(ctx, st)
	require.NoError(t, err)
	seedScenario(t, s)
	_, err = s.Delete(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	st, err = NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	reopened, err := New(ctx, st)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	assert.Equal(t, 2, reopened.Count())
	rec, err := reopened.Add(ctx, 2, "Tea", string(expense.FoodAndDining), "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec.ID)
}
