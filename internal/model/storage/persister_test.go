package storage_test

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/storage/mock"
)

func Test_OnCorruptData_ShouldStartEmpty(t *testing.T) {
	m := minimock.NewController(t)
	p := mock.NewPersisterMock(m)
	p.LoadMock.Return(storage.Snapshot{}, errors.Wrap(storage.ErrCorruptData, "bad json"))

	s, err := storage.New(context.Background(), p)
	require.NoError(m, err)
	assert.Equal(m, 0, s.Count())
	assert.Equal(m, uint64(1), p.LoadAfterCounter())
}

func Test_OnLoadFailure_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	p := mock.NewPersisterMock(m)
	p.LoadMock.Return(storage.Snapshot{}, errors.New("connection refused"))

	_, err := storage.New(context.Background(), p)
	assert.Error(m, err)
	assert.NotErrorIs(m, err, storage.ErrCorruptData)
}

func Test_OnAdd_ShouldPersistWholeSnapshot(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	p := mock.NewPersisterMock(m)
	p.
		LoadMock.
		Return(storage.Snapshot{
			NextID:  5,
			Records: []expense.Record{{ID: 4, Amount: 10, Date: "2024-01-01"}},
		}, nil).
		SaveMock.
		Inspect(func(_ context.Context, snap storage.Snapshot) {
			assert.Equal(m, int64(6), snap.NextID)
			require.Len(m, snap.Records, 2)
			assert.Equal(m, int64(5), snap.Records[1].ID)
			assert.Equal(m, "Tea", snap.Records[1].Description)
		}).
		Return(nil)

	s, err := storage.New(ctx, p)
	require.NoError(m, err)

	rec, err := s.Add(ctx, 2.5, "Tea", string(expense.FoodAndDining), "2024-01-02")
	require.NoError(m, err)
	assert.Equal(m, int64(5), rec.ID)
	assert.Equal(m, uint64(1), p.SaveAfterCounter())
}

func Test_OnSaveFailure_ShouldRollBackMemory(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	p := mock.NewPersisterMock(m)

	var attempts []storage.Snapshot
	p.
		LoadMock.
		Return(storage.Snapshot{
			NextID:  2,
			Records: []expense.Record{{ID: 1, Amount: 10, Date: "2024-01-01"}},
		}, nil).
		SaveMock.
		Inspect(func(_ context.Context, snap storage.Snapshot) {
			attempts = append(attempts, snap)
		}).
		Return(errors.New("disk full"))

	s, err := storage.New(ctx, p)
	require.NoError(m, err)

	_, err = s.Add(ctx, 5, "Lost", string(expense.Other), "")
	assert.Error(m, err)
	assert.Equal(m, 1, s.Count())

	ok, err := s.Delete(ctx, 1)
	assert.Error(m, err)
	assert.False(m, ok)
	assert.Equal(m, 1, s.Count())

	require.Len(m, attempts, 2)
	assert.Len(m, attempts[0].Records, 2)
	assert.Empty(m, attempts[1].Records)
}
