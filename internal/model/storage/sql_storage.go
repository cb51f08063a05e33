package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const (
	counterName = "expenses"
	insertBatch = 100
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id           BIGINT PRIMARY KEY,
		amount       DOUBLE PRECISION NOT NULL,
		description  TEXT NOT NULL,
		category     TEXT NOT NULL,
		expense_date TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS counters (
		name  TEXT PRIMARY KEY,
		value BIGINT NOT NULL
	)`,
}

type postgresConfig interface {
	PostgresDSN() string
}

// SQLStorage persists the snapshot into two tables. Every save rewrites the
// expenses table inside one transaction.
type SQLStorage struct {
	db  *sql.DB
	sql sq.StatementBuilderType
}

func NewSQLiteStorage(ctx context.Context, path string) (*SQLStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open sqlite database")
	}
	// one writer, and keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)
	return newSQLStorage(ctx, db, sq.Question)
}

func NewPostgresStorage(ctx context.Context, config postgresConfig) (*SQLStorage, error) {
	db, err := sql.Open("postgres", config.PostgresDSN())
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return newSQLStorage(ctx, db, sq.Dollar)
}

func newSQLStorage(ctx context.Context, db *sql.DB, placeholders sq.PlaceholderFormat) (*SQLStorage, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "create schema")
		}
	}
	return &SQLStorage{
		db:  db,
		sql: sq.StatementBuilder.PlaceholderFormat(placeholders),
	}, nil
}

func (s *SQLStorage) Load(ctx context.Context) (Snapshot, error) {
	query := s.sql.Select("id", "amount", "description", "category", "expense_date", "created_at").
		From("expenses").
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "get expenses")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	snap := Snapshot{Records: make([]expense.Record, 0)}
	for rows.Next() {
		var (
			rec     expense.Record
			created string
		)
		err = rows.Scan(&rec.ID, &rec.Amount, &rec.Description, &rec.Category, &rec.Date, &created)
		if err != nil {
			return Snapshot{}, errors.Wrap(ErrCorruptData, err.Error())
		}
		rec.Timestamp, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return Snapshot{}, errors.Wrap(ErrCorruptData, err.Error())
		}
		snap.Records = append(snap.Records, rec)
	}
	if err = rows.Err(); err != nil {
		return Snapshot{}, errors.Wrap(err, "get expenses")
	}

	snap.NextID, err = s.loadCounter(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *SQLStorage) loadCounter(ctx context.Context) (int64, error) {
	query := s.sql.Select("value").
		From("counters").
		Where(sq.Eq{"name": counterName})

	var next int64
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "get counter")
	}
	return next, nil
}

func (s *SQLStorage) Save(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save expenses")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = s.sql.Delete("expenses").RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save expenses")
	}

	for start := 0; start < len(snap.Records); start += insertBatch {
		end := start + insertBatch
		if end > len(snap.Records) {
			end = len(snap.Records)
		}
		query := s.sql.Insert("expenses").
			Columns("id", "amount", "description", "category", "expense_date", "created_at")
		for _, rec := range snap.Records[start:end] {
			query = query.Values(rec.ID, rec.Amount, rec.Description, rec.Category, rec.Date,
				rec.Timestamp.Format(time.RFC3339Nano))
		}
		if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "save expenses")
		}
	}

	counter := s.sql.Insert("counters").
		Columns("name", "value").
		Values(counterName, snap.NextID).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value")
	if _, err = counter.RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "save counter")
	}

	return errors.Wrap(tx.Commit(), "save expenses")
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
