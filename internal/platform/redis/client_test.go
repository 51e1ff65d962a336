package redis

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casebridge/internal/platform/config"
)

func TestNewValidatesURL(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		c, err := New(context.Background(), config.RedisConfig{}, nil)
		require.ErrorIs(t, err, ErrNotConfigured)
		assert.Nil(t, c)
	})

	t.Run("malformed url", func(t *testing.T) {
		_, err := New(context.Background(), config.RedisConfig{URL: "://nope"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse redis URL")
	})
}

func TestRecordPoolStatsDeltas(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := &Client{metrics: newPoolMetrics(reg)}

	c.record(&redis.PoolStats{Hits: 5, Misses: 1, TotalConns: 3, IdleConns: 2})
	c.record(&redis.PoolStats{Hits: 8, Misses: 1, TotalConns: 4, IdleConns: 1})

	assert.Equal(t, 8.0, testutil.ToFloat64(c.metrics.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.misses))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.metrics.totalConns))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.idleConns))
}

func TestRecordPoolStatsWithoutMetrics(t *testing.T) {
	c := &Client{}
	assert.NotPanics(t, c.RecordPoolStats)
}
