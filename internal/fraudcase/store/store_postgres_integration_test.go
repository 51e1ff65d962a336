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

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "case_records"))
}

func (s *PostgresStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s.Require().NoError(s.store.Save(ctx, models.NewCaseRecord("1000123", now)))

	got, err := s.store.FindByID(ctx, "1000123")
	s.Require().NoError(err)
	s.Equal("1000123", got.ID)
	s.Equal(models.StatusPending, got.Status)
	s.Equal("NA", got.Code)
	s.Equal(500.0, got.Score)
	s.Equal("", got.EntriesText)
	s.True(now.Equal(got.CreatedAt))
}

func (s *PostgresStoreSuite) TestSaveUpserts() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := models.NewCaseRecord("55", now)
	first.Status = "REVIEWED"
	s.Require().NoError(s.store.Save(ctx, first))
	s.Require().NoError(s.store.Save(ctx, models.NewCaseRecord("55", now)))

	got, err := s.store.FindByID(ctx, "55")
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status)

	var count int
	s.Require().NoError(s.postgres.QueryRow(ctx, "SELECT COUNT(*) FROM case_records WHERE id = $1", "55").Scan(&count))
	s.Equal(1, count)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
