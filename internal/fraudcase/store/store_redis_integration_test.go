//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"casebridge/internal/fraudcase/models"
	"casebridge/internal/fraudcase/store"
	"casebridge/internal/sentinel"
	"casebridge/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.Client.FlushDB(context.Background()).Err())
}

func (s *RedisStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.store.Save(ctx, models.NewCaseRecord("1000123", now)))

	got, err := s.store.FindByID(ctx, "1000123")
	s.Require().NoError(err)
	s.Equal(models.NewCaseRecord("1000123", now).Score, got.Score)
	s.Equal(models.StatusPending, got.Status)
	s.True(now.Equal(got.CreatedAt))

	ttl, err := s.redis.Client.TTL(ctx, "fraudcase:record:1000123").Result()
	s.Require().NoError(err)
	s.Equal(time.Duration(-1), ttl)
}

func (s *RedisStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
