package storage

import (
	"context"
	"io"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

var (
	ErrInvalidAmount = errors.New("amount must be a finite non-negative number")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	// ErrCorruptData is returned by persisters when stored data cannot be decoded.
	ErrCorruptData = errors.New("persisted expenses are corrupt")
)

// Snapshot is everything a persister writes: the records and the next id to hand out.
type Snapshot struct {
	NextID  int64
	Records []expense.Record
}

//go:generate minimock -i persister -o ./mock/persister_mock.go -n PersisterMock
type persister interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// Store keeps expenses in memory and writes the whole collection through
// to its persister after every mutation.
type Store struct {
	persister persister
	records   []expense.Record
	nextID    int64
	now       func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(ctx context.Context, p persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory collection with the persisted one.
// Missing or corrupt data yields an empty store.
func (s *Store) Load(ctx context.Context) ([]expense.Record, error) {
	snap, err := s.persister.Load(ctx)
	if errors.Is(err, ErrCorruptData) {
		logger.Warn("cannot decode stored expenses, starting empty", zap.Error(err))
		snap = Snapshot{}
	} else if err != nil {
		return nil, errors.Wrap(err, "load expenses")
	}

	s.records = snap.Records
	if s.records == nil {
		s.records = make([]expense.Record, 0)
	}
	s.nextID = snap.NextID
	if maxID := maxRecordID(s.records); s.nextID <= maxID {
		s.nextID = maxID + 1
	}

	logger.Debug("expenses loaded", zap.Int("count", len(s.records)), zap.Int64("nextID", s.nextID))
	return s.Records(), nil
}

func maxRecordID(records []expense.Record) int64 {
	var res int64
	for _, rec := range records {
		if rec.ID > res {
			res = rec.ID
		}
	}
	return res
}

func (s *Store) Add(ctx context.Context, amount float64, description, category, date string) (expense.Record, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return expense.Record{}, errors.Wrapf(ErrInvalidAmount, "add expense %v", amount)
	}

	created := s.now()
	if date == "" {
		date = created.Format(expense.DateLayout)
	} else if _, err := time.Parse(expense.DateLayout, date); err != nil {
		return expense.Record{}, errors.Wrapf(ErrInvalidDate, "add expense %q", date)
	}

	if !expense.Category(category).Valid() {
		logger.Warn("category is outside the fixed set", zap.String("category", category))
	}

	rec := expense.Record{
		ID:          s.nextID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		Timestamp:   created,
	}

	s.records = append(s.records, rec)
	s.nextID++
	if err := s.persist(ctx); err != nil {
		s.records = s.records[:len(s.records)-1]
		s.nextID--
		return expense.Record{}, errors.Wrap(err, "add expense")
	}

	logger.Info("expense added", zap.Int64("id", rec.ID), zap.Float64("amount", rec.Amount))
	return rec, nil
}

// ListRecent returns up to limit records, newest insertion first.
func (s *Store) ListRecent(limit int) []expense.Record {
	if limit <= 0 {
		return []expense.Record{}
	}
	res := s.Records()
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Timestamp.After(res[j].Timestamp)
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

// Delete removes the first record with the id. It reports false when no record matched.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	idx := -1
	for i, rec := range s.records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	prev := s.records
	s.records = make([]expense.Record, 0, len(prev)-1)
	s.records = append(s.records, prev[:idx]...)
	s.records = append(s.records, prev[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		s.records = prev
		return false, errors.Wrap(err, "delete expense")
	}

	logger.Info("expense deleted", zap.Int64("id", id))
	return true, nil
}

// Find returns the record with the id, if present.
func (s *Store) Find(id int64) (expense.Record, bool) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return expense.Record{}, false
}

// Records returns a copy of the collection in insertion order.
func (s *Store) Records() []expense.Record {
	res := make([]expense.Record, len(s.records))
	copy(res, s.records)
	return res
}

func (s *Store) Count() int {
	return len(s.records)
}

func (s *Store) persist(ctx context.Context) error {
	return s.persister.Save(ctx, Snapshot{
		NextID:  s.nextID,
		Records: s.Records(),
	})
}

func (s *Store) Close() error {
	if c, ok := s.persister.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
