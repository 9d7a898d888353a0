package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"pos-service/internal/config"

	"go.uber.org/zap"
)

// Kind names one of the ledgers
type Kind string

const (
	Items        Kind = "items"
	Transactions Kind = "transactions"
)

// Record is one ledger row in column order; column 0 is the key
type Record []string

var columns = map[Kind][]string{
	Items:        {"code", "name", "price", "details", "created_at", "quantity"},
	Transactions: {"transaction_id", "item_name", "item_quantity", "item_price", "customer_name", "date", "processed_by"},
}

// Columns returns the header of a ledger kind
func Columns(kind Kind) []string {
	cols := columns[kind]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// UpdateFunc receives the current records and returns the records to persist
type UpdateFunc func(records []Record) ([]Record, error)

// Store is the durable record store for items and transaction lines
type Store interface {
	ReadAll(ctx context.Context, kind Kind) ([]Record, error)
	Find(ctx context.Context, kind Kind, key string) (Record, error)
	Append(ctx context.Context, kind Kind, records ...Record) error
	RewriteAll(ctx context.Context, kind Kind, records []Record) error
	// Update runs fn as one read-modify-write under the store lock.
	// An error returned by fn aborts the update and is returned unchanged.
	Update(ctx context.Context, kind Kind, fn UpdateFunc) error
	Export(ctx context.Context, kind Kind, w io.Writer) error
	Close() error
}

// ErrNotFound is returned by Find when no record carries the key
var ErrNotFound = errors.New("record not found")

// StoreError reports an I/O or parse failure of the backing store
type StoreError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(kind Kind, op string, err error) error {
	return &StoreError{Kind: kind, Op: op, Err: err}
}

// New builds the store selected by STORE_DRIVER
func New(cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		return NewSQLiteStore(cfg.SQLitePath, logger)
	case "csv", "":
		return NewCSVStore(cfg.DataDir, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func validKind(kind Kind) error {
	if _, ok := columns[kind]; !ok {
		return fmt.Errorf("unknown ledger kind %q", kind)
	}
	return nil
}

func checkRecord(kind Kind, rec Record) error {
	if want := len(columns[kind]); len(rec) != want {
		return fmt.Errorf("record has %d columns, want %d", len(rec), want)
	}
	return nil
}

func findIn(records []Record, key string) (Record, error) {
	for _, rec := range records {
		if len(rec) > 0 && rec[0] == key {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// writeCSV renders records with their header, used by every backend's Export
func writeCSV(w io.Writer, kind Kind, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns[kind]); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
