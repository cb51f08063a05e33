package storage

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// tickingClock returns a clock advancing one second per call.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clock := tickingClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	s, err := New(context.Background(), NewInMemStorage(), WithClock(clock))
	require.NoError(t, err)
	return s
}

func seedScenario(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	_, err := s.Add(ctx, 30, "Lunch", string(expense.FoodAndDining), "2024-01-15")
	require.NoError(t, err)
	_, err = s.Add(ctx, 15, "Bus", string(expense.Transportation), "2024-01-20")
	require.NoError(t, err)
	_, err = s.Add(ctx, 45, "Dinner", string(expense.FoodAndDining), "2024-02-01")
	require.NoError(t, err)
}

func Test_OnAdd_ShouldGrowByOneWithDistinctID(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)

	before := s.Count()
	rec, err := s.Add(context.Background(), 12.5, "Coffee", string(expense.FoodAndDining), "")
	require.NoError(t, err)

	assert.Equal(t, before+1, s.Count())
	for _, other := range s.Records()[:before] {
		assert.NotEqual(t, other.ID, rec.ID)
	}
}

func Test_OnAddWithoutDate_ShouldUseToday(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Add(context.Background(), 1, "Gum", string(expense.Other), "")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", rec.Date)
	assert.False(t, rec.Timestamp.IsZero())
}

func Test_OnInvalidAmount_ShouldReject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := s.Add(ctx, amount, "Bad", string(expense.Other), "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	_, err := s.Add(ctx, 0, "Free sample", string(expense.Other), "")
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Count())
}

func Test_OnInvalidDate_ShouldReject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(context.Background(), 5, "Bad", string(expense.Other), "15/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, s.Count())
}

func Test_OnUnknownCategory_ShouldPassThroughWithWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer logger.Replace(zap.New(core))()
	s := newTestStore(t)

	rec, err := s.Add(context.Background(), 5, "Widget", "Gadgets", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", rec.Category)

	warnings := logs.FilterMessage("category is outside the fixed set").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Gadgets", warnings[0].ContextMap()["category"])

	_, err = s.Add(context.Background(), 5, "Milk", string(expense.Groceries), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("category is outside the fixed set").Len())
}

func Test_OnDeleteTwice_ShouldReturnFalseSecondTime(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)
	ctx := context.Background()

	ok, err := s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Count())
}

func Test_OnDeleteUnknownID_ShouldKeepCount(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)

	ok, err := s.Delete(context.Background(), 9999)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, s.Count())
}

func Test_OnAddAfterDelete_ShouldNotReuseIDs(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)
	ctx := context.Background()

	_, err := s.Delete(ctx, 1)
	require.NoError(t, err)
	rec, err := s.Add(ctx, 3, "Tea", string(expense.FoodAndDining), "")
	require.NoError(t, err)

	assert.Equal(t, int64(4), rec.ID)
	ids := map[int64]bool{}
	for _, r := range s.Records() {
		assert.False(t, ids[r.ID], "duplicate id %d", r.ID)
		ids[r.ID] = true
	}
}

func Test_OnListRecent_ShouldOrderByInsertionTime(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)

	recent := s.ListRecent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "Dinner", recent[0].Description)
	assert.Equal(t, "Bus", recent[1].Description)

	assert.Len(t, s.ListRecent(10), 3)
	assert.Empty(t, s.ListRecent(0))
	assert.Empty(t, s.ListRecent(-5))
}

func Test_OnReload_ShouldKeepCounterAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	mem := NewInMemStorage()
	s, err := New(ctx, mem)
	require.NoError(t, err)
	seedScenario(t, s)
	_, err = s.Delete(ctx, 3)
	require.NoError(t, err)

	reopened, err := New(ctx, mem)
	require.NoError(t, err)
	rec, err := reopened.Add(ctx, 1, "Snack", string(expense.FoodAndDining), "")
	require.NoError(t, err)

	assert.Equal(t, int64(4), rec.ID)
}

func Test_OnLegacyRecordsWithoutCounter_ShouldContinueAfterMaxID(t *testing.T) {
	ctx := context.Background()
	mem := NewInMemStorage(
		expense.Record{ID: 7, Amount: 1, Date: "2024-01-01"},
		expense.Record{ID: 3, Amount: 2, Date: "2024-01-02"},
	)
	s, err := New(ctx, mem)
	require.NoError(t, err)

	rec, err := s.Add(ctx, 1, "Next", string(expense.Other), "")
	require.NoError(t, err)
	assert.Equal(t, int64(8), rec.ID)
}

func Test_OnFind(t *testing.T) {
	s := newTestStore(t)
	seedScenario(t, s)

	rec, ok := s.Find(2)
	assert.True(t, ok)
	assert.Equal(t, "Bus", rec.Description)

	_, ok = s.Find(42)
	assert.False(t, ok)
}
