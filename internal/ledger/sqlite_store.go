package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var tableNames = map[Kind]string{
	Items:        "items",
	Transactions: "transaction_lines",
}

// SQLiteStore keeps each ledger in a TEXT-column table. It uses a single
// connection and serializes writers with mu.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSQLiteStore opens the database file and creates the ledger tables
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite ledger ready", zap.String("path", path))
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	for kind, cols := range columns {
		defs := make([]string, 0, len(cols)+1)
		defs = append(defs, "seq INTEGER PRIMARY KEY AUTOINCREMENT")
		for _, c := range cols {
			defs = append(defs, c+" TEXT NOT NULL")
		}
		table := tableNames[kind]
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);\nCREATE INDEX IF NOT EXISTS idx_%s_key ON %s(%s);",
			table, strings.Join(defs, ", "), table, table, cols[0])
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func selectQuery(kind Kind) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY seq", strings.Join(columns[kind], ", "), tableNames[kind])
}

func insertQuery(kind Kind) string {
	cols := columns[kind]
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableNames[kind], strings.Join(cols, ", "), marks)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func readRows(ctx context.Context, q queryer, kind Kind) ([]Record, error) {
	rows, err := q.QueryContext(ctx, selectQuery(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	n := len(columns[kind])
	records := make([]Record, 0)
	for rows.Next() {
		rec := make(Record, n)
		dest := make([]interface{}, n)
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func insertRows(ctx context.Context, tx *sql.Tx, kind Kind, records []Record) error {
	stmt, err := tx.PrepareContext(ctx, insertQuery(kind))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if err := checkRecord(kind, rec); err != nil {
			return err
		}
		args := make([]interface{}, len(rec))
		for i, v := range rec {
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) ReadAll(ctx context.Context, kind Kind) ([]Record, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	records, err := readRows(ctx, s.db, kind)
	if err != nil {
		return nil, storeErr(kind, "read", err)
	}
	return records, nil
}

func (s *SQLiteStore) Find(ctx context.Context, kind Kind, key string) (Record, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}
	cols := columns[kind]
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY seq LIMIT 1",
		strings.Join(cols, ", "), tableNames[kind], cols[0])

	rows, err := s.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, storeErr(kind, "find", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storeErr(kind, "find", err)
		}
		return nil, ErrNotFound
	}

	rec := make(Record, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range rec {
		dest[i] = &rec[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, storeErr(kind, "find", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Append(ctx context.Context, kind Kind, records ...Record) error {
	if err := validKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inTx(ctx, kind, "append", func(tx *sql.Tx) error {
		return insertRows(ctx, tx, kind, records)
	})
}

func (s *SQLiteStore) RewriteAll(ctx context.Context, kind Kind, records []Record) error {
	if err := validKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inTx(ctx, kind, "rewrite", func(tx *sql.Tx) error {
		return replaceRows(ctx, tx, kind, records)
	})
}

func (s *SQLiteStore) Update(ctx context.Context, kind Kind, fn UpdateFunc) error {
	if err := validKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(kind, "update", err)
	}
	defer tx.Rollback()

	records, err := readRows(ctx, tx, kind)
	if err != nil {
		return storeErr(kind, "update", err)
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	if err := replaceRows(ctx, tx, kind, updated); err != nil {
		return storeErr(kind, "update", err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr(kind, "update", err)
	}
	return nil
}

func (s *SQLiteStore) Export(ctx context.Context, kind Kind, w io.Writer) error {
	records, err := s.ReadAll(ctx, kind)
	if err != nil {
		return err
	}
	if err := writeCSV(w, kind, records); err != nil {
		return storeErr(kind, "export", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) inTx(ctx context.Context, kind Kind, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(kind, op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return storeErr(kind, op, err)
	}
	if err := tx.Commit(); err != nil {
		return storeErr(kind, op, err)
	}
	return nil
}

func replaceRows(ctx context.Context, tx *sql.Tx, kind Kind, records []Record) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+tableNames[kind]); err != nil {
		return err
	}
	return insertRows(ctx, tx, kind, records)
}
