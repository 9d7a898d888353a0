package ledger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pos-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()
	logger := zap.NewNop()

	csvStore, err := NewCSVStore(t.TempDir(), logger)
	require.NoError(t, err)

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"), logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		csvStore.Close()
		sqliteStore.Close()
	})

	return map[string]Store{"csv": csvStore, "sqlite": sqliteStore}
}

func item(code, qty string) Record {
	return Record{code, "Book " + code, "45.00", "details, with comma", "2024-03-01T10:30:00Z", qty}
}

func TestStore_AppendAndReadAll(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			records, err := store.ReadAll(ctx, Items)
			require.NoError(t, err)
			assert.Empty(t, records)

			require.NoError(t, store.Append(ctx, Items, item("1", "2"), item("2", "3")))

			records, err = store.ReadAll(ctx, Items)
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, item("1", "2"), records[0])
			assert.Equal(t, item("2", "3"), records[1])
		})
	}
}

func TestStore_Find(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Append(ctx, Items, item("1", "2")))

			rec, err := store.Find(ctx, Items, "1")
			require.NoError(t, err)
			assert.Equal(t, item("1", "2"), rec)

			_, err = store.Find(ctx, Items, "missing")
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestStore_RewriteAll(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Append(ctx, Items, item("1", "2"), item("2", "3")))

			require.NoError(t, store.RewriteAll(ctx, Items, []Record{item("2", "9")}))

			records, err := store.ReadAll(ctx, Items)
			require.NoError(t, err)
			assert.Equal(t, []Record{item("2", "9")}, records)
		})
	}
}

func TestStore_Update(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Append(ctx, Items, item("1", "2")))

			err := store.Update(ctx, Items, func(records []Record) ([]Record, error) {
				records[0][5] = "7"
				return append(records, item("2", "1")), nil
			})
			require.NoError(t, err)

			records, err := store.ReadAll(ctx, Items)
			require.NoError(t, err)
			assert.Equal(t, []Record{item("1", "7"), item("2", "1")}, records)
		})
	}
}

func TestStore_UpdateAbortLeavesDataUnchanged(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Append(ctx, Items, item("1", "2")))

			abort := errors.New("abort")
			err := store.Update(ctx, Items, func(records []Record) ([]Record, error) {
				return nil, abort
			})
			assert.Equal(t, abort, err)

			records, err := store.ReadAll(ctx, Items)
			require.NoError(t, err)
			assert.Equal(t, []Record{item("1", "2")}, records)
		})
	}
}

func TestStore_RejectsWrongColumnCount(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Append(context.Background(), Items, Record{"1", "short"})

			var storeErr *StoreError
			assert.True(t, errors.As(err, &storeErr))
		})
	}
}

func TestStore_Export(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Append(ctx, Items, item("1", "2")))

			var buf bytes.Buffer
			require.NoError(t, store.Export(ctx, Items, &buf))

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, "code,name,price,details,created_at,quantity", lines[0])
			assert.Equal(t, `1,Book 1,45.00,"details, with comma",2024-03-01T10:30:00Z,2`, lines[1])
		})
	}
}

func TestCSVStore_CreatesHeaders(t *testing.T) {
	dir := t.TempDir()
	_, err := NewCSVStore(dir, zap.NewNop())
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "books.csv"))
	require.NoError(t, err)
	assert.Equal(t, "code,name,price,details,created_at,quantity\n", string(content))

	content, err = os.ReadFile(filepath.Join(dir, "transactions.csv"))
	require.NoError(t, err)
	assert.Equal(t, "transaction_id,item_name,item_quantity,item_price,customer_name,date,processed_by\n", string(content))
}

func TestCSVStore_MalformedRowIsStoreError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewCSVStore(dir, zap.NewNop())
	require.NoError(t, err)

	corrupt := "code,name,price,details,created_at,quantity\n1,Book,45.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.csv"), []byte(corrupt), 0o644))

	_, err = store.ReadAll(context.Background(), Items)
	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, Items, storeErr.Kind)

	_, err = store.Find(context.Background(), Items, "1")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestNew_SelectsDriver(t *testing.T) {
	dir := t.TempDir()

	store, err := New(&config.Config{StoreDriver: "csv", DataDir: dir}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &CSVStore{}, store)

	store, err = New(&config.Config{StoreDriver: "sqlite", DataDir: dir, SQLitePath: filepath.Join(dir, "ledger.db")}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	store.Close()

	_, err = New(&config.Config{StoreDriver: "mongo", DataDir: dir}, zap.NewNop())
	assert.Error(t, err)
}
