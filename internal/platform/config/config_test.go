package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("CASEBRIDGE_ADDR", "")
		t.Setenv("CASE_STORE", "")
		t.Setenv("KAFKA_BROKERS", "")
		t.Setenv("CARD_PAYMENT_METHODS", "")

		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, StoreMemory, cfg.CaseStore)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Equal(t, "fraudcase.submissions", cfg.Kafka.Topic)
		assert.Nil(t, cfg.CardMethods)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("CASEBRIDGE_ADDR", ":9090")
		t.Setenv("CASE_STORE", "Postgres")
		t.Setenv("SUBMISSION_TIMEOUT", "2s")
		t.Setenv("KAFKA_BROKERS", "localhost:9092")
		t.Setenv("CARD_PAYMENT_METHODS", "ccsave, braintree ,,payflowpro")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, StorePostgres, cfg.CaseStore)
		assert.Equal(t, 2*time.Second, cfg.SubmissionTimeout)
		assert.True(t, cfg.Kafka.Enabled())
		assert.Equal(t, []string{"ccsave", "braintree", "payflowpro"}, cfg.CardMethods)
	})
}

func TestScope(t *testing.T) {
	t.Run("env key derived from path", func(t *testing.T) {
		assert.Equal(t, "SIGNIFYD_GENERAL_KEY", EnvKey(APIKeyPath))
	})

	t.Run("env scope reads the derived variable", func(t *testing.T) {
		t.Setenv("SIGNIFYD_GENERAL_KEY", "key-123")
		assert.Equal(t, "key-123", EnvScope{}.Value(APIKeyPath))
	})

	t.Run("map scope", func(t *testing.T) {
		scope := MapScope{APIKeyPath: "abc"}
		assert.Equal(t, "abc", scope.Value(APIKeyPath))
		assert.Equal(t, "", scope.Value("signifyd/general/other"))
	})
}
