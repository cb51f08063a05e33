package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// layouts accepted for the timestamp field, the second one is a naive local
// ISO timestamp as written by older files
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

type jsonRecord struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Timestamp   string  `json:"timestamp"`
}

type jsonFile struct {
	NextID   int64        `json:"next_id"`
	Expenses []jsonRecord `json:"expenses"`
}

// JSONStorage keeps the snapshot in a single human-readable file.
type JSONStorage struct {
	path string
}

func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

func (s *JSONStorage) Load(_ context.Context) (Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no expenses file yet", zap.String("path", s.path))
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "read expenses file")
	}

	var file jsonFile
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// bare array without a counter
		err = json.Unmarshal(trimmed, &file.Expenses)
	} else {
		err = json.Unmarshal(trimmed, &file)
	}
	if err != nil {
		return Snapshot{}, errors.Wrap(ErrCorruptData, err.Error())
	}

	snap := Snapshot{
		NextID:  file.NextID,
		Records: make([]expense.Record, 0, len(file.Expenses)),
	}
	for _, rec := range file.Expenses {
		snap.Records = append(snap.Records, fromJSON(rec))
	}
	return snap, nil
}

func fromJSON(rec jsonRecord) expense.Record {
	return expense.Record{
		ID:          rec.ID,
		Amount:      rec.Amount,
		Description: rec.Description,
		Category:    rec.Category,
		Date:        rec.Date,
		Timestamp:   parseTimestamp(rec.Timestamp),
	}
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func toJSON(rec expense.Record) jsonRecord {
	return jsonRecord{
		ID:          rec.ID,
		Amount:      rec.Amount,
		Description: rec.Description,
		Category:    rec.Category,
		Date:        rec.Date,
		Timestamp:   rec.Timestamp.Format(time.RFC3339Nano),
	}
}

// Save writes to a temp file in the same directory and renames it over the
// target, so a crash never leaves a half-written file behind.
func (s *JSONStorage) Save(_ context.Context, snap Snapshot) error {
	file := jsonFile{
		NextID:   snap.NextID,
		Expenses: make([]jsonRecord, 0, len(snap.Records)),
	}
	for _, rec := range snap.Records {
		file.Expenses = append(file.Expenses, toJSON(rec))
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode expenses")
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create expenses dir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(append(raw, '\n')); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync temp file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace expenses file")
	}

	logger.Debug("expenses saved", zap.String("path", s.path), zap.Int("count", len(snap.Records)))
	return nil
}
