package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"casebridge/internal/fraudcase/service"
	"casebridge/internal/fraudcase/store"
	"casebridge/internal/platform/config"
	"casebridge/internal/platform/database"
	"casebridge/internal/platform/health"
	"casebridge/internal/platform/redis"
	"casebridge/migrations"
)

const redisStatsInterval = 15 * time.Second

// caseStore bundles the selected backend with its lifecycle hooks.
type caseStore struct {
	service.Store
	close      func() error
	background func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg config.Server, reg prometheus.Registerer, probes *health.Handler) (*caseStore, error) {
	switch cfg.CaseStore {
	case config.StoreMemory:
		return &caseStore{Store: store.NewInMemory(), close: func() error { return nil }}, nil

	case config.StorePostgres:
		pool, err := database.Open(ctx, database.DefaultConfig(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("open postgres case store: %w", err)
		}
		if err := database.Migrate(ctx, pool.DB(), migrations.FS); err != nil {
			pool.Close() //nolint:errcheck // best-effort cleanup on init failure
			return nil, fmt.Errorf("migrate postgres case store: %w", err)
		}
		probes.RegisterCheck("postgres", pool.Health)
		return &caseStore{Store: store.NewPostgres(pool.DB()), close: pool.Close}, nil

	case config.StoreRedis:
		client, err := redis.New(ctx, cfg.Redis, reg)
		if err != nil {
			return nil, fmt.Errorf("open redis case store: %w", err)
		}
		probes.RegisterCheck("redis", client.Health)
		return &caseStore{
			Store: store.NewRedis(client.Client),
			close: client.Close,
			background: func(ctx context.Context) error {
				return client.ReportPoolStats(ctx, redisStatsInterval)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown CASE_STORE %q", cfg.CaseStore)
	}
}
