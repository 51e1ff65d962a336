package producer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"casebridge/internal/platform/config"
)

func TestNewRequiresBrokers(t *testing.T) {
	p, err := New(config.KafkaConfig{}, nil)
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestAcks(t *testing.T) {
	assert.Equal(t, kgo.NoAck(), acks("0"))
	assert.Equal(t, kgo.LeaderAck(), acks("1"))
	assert.Equal(t, kgo.AllISRAcks(), acks("all"))
	assert.Equal(t, kgo.AllISRAcks(), acks(""))
}

func TestProduceAfterClose(t *testing.T) {
	p, err := New(config.KafkaConfig{Brokers: "127.0.0.1:1", Acks: "all"}, nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	err = p.Produce(context.Background(), &Message{Topic: "t", Value: []byte("v")})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, p.Healthy(context.Background()), ErrClosed)
}
