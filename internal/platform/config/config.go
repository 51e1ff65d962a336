package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by CASE_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// SubmissionTimeout bounds a single outbound create-case call.
var SubmissionTimeout = 10 * time.Second

// Server captures process level configuration.
type Server struct {
	Addr              string
	Environment       string
	CaseStore         string
	DatabaseURL       string
	Redis             RedisConfig
	Kafka             KafkaConfig
	SubmissionTimeout time.Duration
	CardMethods       []string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds settings for the submission outcome producer.
type KafkaConfig struct {
	Brokers         string
	Topic           string
	Acks            string
	Retries         int
	DeliveryTimeout time.Duration
}

// Enabled reports whether outcome events should be produced.
func (k KafkaConfig) Enabled() bool {
	return k.Brokers != ""
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	if d, ok := durationEnv("SUBMISSION_TIMEOUT"); ok {
		SubmissionTimeout = d
	}

	return Server{
		Addr:              getEnv("CASEBRIDGE_ADDR", ":8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		CaseStore:         strings.ToLower(getEnv("CASE_STORE", StoreMemory)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Redis:             redisFromEnv(),
		Kafka:             kafkaFromEnv(),
		SubmissionTimeout: SubmissionTimeout,
		CardMethods:       splitList(os.Getenv("CARD_PAYMENT_METHODS")),
	}
}

func redisFromEnv() RedisConfig {
	cfg := RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     intEnv("REDIS_POOL_SIZE", 10),
		MinIdleConns: intEnv("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	if d, ok := durationEnv("REDIS_DIAL_TIMEOUT"); ok {
		cfg.DialTimeout = d
	}
	return cfg
}

func kafkaFromEnv() KafkaConfig {
	cfg := KafkaConfig{
		Brokers:         os.Getenv("KAFKA_BROKERS"),
		Topic:           getEnv("KAFKA_SUBMISSION_TOPIC", "fraudcase.submissions"),
		Acks:            getEnv("KAFKA_ACKS", "all"),
		Retries:         intEnv("KAFKA_RETRIES", 3),
		DeliveryTimeout: 30 * time.Second,
	}
	if d, ok := durationEnv("KAFKA_DELIVERY_TIMEOUT"); ok {
		cfg.DeliveryTimeout = d
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func durationEnv(key string) (time.Duration, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
