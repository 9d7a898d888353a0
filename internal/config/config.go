package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Ledger Configuration
	DataDir     string
	StoreDriver string // "csv" or "sqlite"
	SQLitePath  string
	// Session Configuration
	JWTSecret     string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
	SecureCookies bool
	// Camera / Scan Configuration
	CameraSnapshotURL  string
	CameraFrameTimeout time.Duration
	ScanPollInterval   time.Duration
	ScanMaxDuration    time.Duration
	ScanMaxFrameErrors int
	// Redis Configuration (optional - idempotency store)
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	UseCache       bool
	IdempotencyTTL time.Duration
	// Kafka Configuration (optional - domain events)
	KafkaBrokers    []string
	KafkaTopicItems string
	KafkaTopicSales string
	KafkaClientID   string
	KafkaAcks       string
	KafkaRetries    int
	UseKafka        bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		// Ledger Configuration
		DataDir:     dataDir,
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "csv")),
		SQLitePath:  getEnv("SQLITE_PATH", filepath.Join(dataDir, "ledger.db")),
		// Session Configuration
		JWTSecret:     getEnv("JWT_SECRET", "library-pos-secret-key-change-in-production"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 8*time.Hour),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SecureCookies: getEnvAsBool("SECURE_COOKIES", false),
		// Camera / Scan Configuration
		CameraSnapshotURL:  getEnv("CAMERA_SNAPSHOT_URL", ""),
		CameraFrameTimeout: getEnvAsDuration("CAMERA_FRAME_TIMEOUT", 2*time.Second),
		ScanPollInterval:   getEnvAsDuration("SCAN_POLL_INTERVAL", 100*time.Millisecond),
		ScanMaxDuration:    getEnvAsDuration("SCAN_MAX_DURATION", 2*time.Minute),
		ScanMaxFrameErrors: getEnvAsInt("SCAN_MAX_FRAME_ERRORS", 50),
		// Redis Configuration (optional)
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		UseCache:       getEnvAsBool("USE_CACHE", false),
		IdempotencyTTL: getEnvAsDuration("IDEMPOTENCY_TTL", 5*time.Minute),
		// Kafka Configuration (optional)
		KafkaBrokers:    kafkaBrokers,
		KafkaTopicItems: getEnv("KAFKA_TOPIC_ITEMS", "pos.items"),
		KafkaTopicSales: getEnv("KAFKA_TOPIC_SALES", "pos.sales"),
		KafkaClientID:   getEnv("KAFKA_CLIENT_ID", "pos-service"),
		KafkaAcks:       getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:    getEnvAsInt("KAFKA_RETRIES", 3),
		UseKafka:        getEnvAsBool("USE_KAFKA", false),
	}
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true" || value == "1"
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

// getEnvAsDuration accepts Go duration strings ("150ms", "2m").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := time.ParseDuration(value)
	if err != nil || result <= 0 {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
