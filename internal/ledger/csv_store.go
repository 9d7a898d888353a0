package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

var fileNames = map[Kind]string{
	Items:        "books.csv",
	Transactions: "transactions.csv",
}

// CSVStore keeps one CSV file per ledger kind in a data directory.
// Every call is serialized by mu.
type CSVStore struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewCSVStore creates the data directory and both ledger files with headers
func NewCSVStore(dir string, logger *zap.Logger) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &CSVStore{dir: dir, logger: logger}
	for kind := range columns {
		if err := s.ensureFile(kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *CSVStore) path(kind Kind) string {
	return filepath.Join(s.dir, fileNames[kind])
}

func (s *CSVStore) ensureFile(kind Kind) error {
	_, err := os.Stat(s.path(kind))
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return storeErr(kind, "init", err)
	}

	s.logger.Info("Creating ledger file", zap.String("path", s.path(kind)))
	if err := s.writeFile(kind, nil); err != nil {
		return storeErr(kind, "init", err)
	}
	return nil
}

func (s *CSVStore) ReadAll(ctx context.Context, kind Kind) ([]Record, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(kind)
}

func (s *CSVStore) Find(ctx context.Context, kind Kind, key string) (Record, error) {
	records, err := s.ReadAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return findIn(records, key)
}

func (s *CSVStore) Append(ctx context.Context, kind Kind, records ...Record) error {
	if err := validKind(kind); err != nil {
		return err
	}
	for _, rec := range records {
		if err := checkRecord(kind, rec); err != nil {
			return storeErr(kind, "append", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFile(kind); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path(kind), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return storeErr(kind, "append", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return storeErr(kind, "append", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return storeErr(kind, "append", err)
	}
	if err := f.Sync(); err != nil {
		return storeErr(kind, "append", err)
	}
	return nil
}

func (s *CSVStore) RewriteAll(ctx context.Context, kind Kind, records []Record) error {
	if err := validKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewrite(kind, records)
}

func (s *CSVStore) Update(ctx context.Context, kind Kind, fn UpdateFunc) error {
	if err := validKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(kind)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.rewrite(kind, updated)
}

func (s *CSVStore) Export(ctx context.Context, kind Kind, w io.Writer) error {
	records, err := s.ReadAll(ctx, kind)
	if err != nil {
		return err
	}
	if err := writeCSV(w, kind, records); err != nil {
		return storeErr(kind, "export", err)
	}
	return nil
}

func (s *CSVStore) Close() error {
	return nil
}

// read must be called with mu held
func (s *CSVStore) read(kind Kind) ([]Record, error) {
	f, err := os.Open(s.path(kind))
	if errors.Is(err, os.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, storeErr(kind, "read", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns[kind])

	rows, err := r.ReadAll()
	if err != nil {
		return nil, storeErr(kind, "read", err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		records = append(records, Record(row))
	}
	return records, nil
}

// rewrite must be called with mu held
func (s *CSVStore) rewrite(kind Kind, records []Record) error {
	for _, rec := range records {
		if err := checkRecord(kind, rec); err != nil {
			return storeErr(kind, "rewrite", err)
		}
	}
	if err := s.writeFile(kind, records); err != nil {
		return storeErr(kind, "rewrite", err)
	}
	return nil
}

// writeFile writes to a temp file in the same directory and renames it over
// the ledger so readers never observe a partial file.
func (s *CSVStore) writeFile(kind Kind, records []Record) error {
	tmp, err := os.CreateTemp(s.dir, fileNames[kind]+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := writeCSV(tmp, kind, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(kind))
}
