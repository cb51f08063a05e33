package storage

import (
	"context"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// InMemStorage keeps the snapshot in process memory only.
type InMemStorage struct {
	snap Snapshot
}

func NewInMemStorage(records ...expense.Record) *InMemStorage {
	return &InMemStorage{snap: Snapshot{Records: records}}
}

func (s *InMemStorage) Load(_ context.Context) (Snapshot, error) {
	return copySnapshot(s.snap), nil
}

func (s *InMemStorage) Save(_ context.Context, snap Snapshot) error {
	s.snap = copySnapshot(snap)
	return nil
}

func copySnapshot(snap Snapshot) Snapshot {
	records := make([]expense.Record, len(snap.Records))
	copy(records, snap.Records)
	return Snapshot{NextID: snap.NextID, Records: records}
}
