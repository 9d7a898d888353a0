package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/pos-data")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SCAN_POLL_INTERVAL", "")

	cfg := Load()

	assert.Equal(t, "/tmp/pos-data", cfg.DataDir)
	assert.Equal(t, "csv", cfg.StoreDriver)
	assert.Equal(t, "/tmp/pos-data/ledger.db", cfg.SQLitePath)
	assert.Equal(t, 100*time.Millisecond, cfg.ScanPollInterval)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SCAN_MAX_DURATION", "30s")
	t.Setenv("USE_KAFKA", "1")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.ScanMaxDuration)
	assert.True(t, cfg.UseKafka)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_DURATION", time.Second))

	t.Setenv("SOME_DURATION", "-5s")
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_DURATION", time.Second))
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
}
