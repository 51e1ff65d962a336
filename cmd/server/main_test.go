package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casebridge/internal/fraudcase/handler"
	"casebridge/internal/fraudcase/service"
	"casebridge/internal/fraudcase/store"
	"casebridge/internal/order"
	"casebridge/internal/platform/config"
	"casebridge/internal/platform/health"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := openStore(context.Background(), config.Server{CaseStore: config.StoreMemory}, prometheus.NewRegistry(), health.New())
		require.NoError(t, err)
		assert.IsType(t, &store.InMemoryStore{}, s.Store)
		assert.NoError(t, s.close())
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, err := openStore(context.Background(), config.Server{CaseStore: config.StorePostgres}, prometheus.NewRegistry(), health.New())
		require.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := openStore(context.Background(), config.Server{CaseStore: "dynamo"}, prometheus.NewRegistry(), health.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dynamo")
	})
}

func TestSubmitterStateWithoutKey(t *testing.T) {
	t.Setenv("SIGNIFYD_GENERAL_KEY", "")
	state := submitterState(config.Server{SubmissionTimeout: config.SubmissionTimeout}, discardLogger())
	assert.False(t, state.Ready())
}

func TestRouter(t *testing.T) {
	log := discardLogger()
	reg := prometheus.NewRegistry()
	svc := service.NewService(store.NewInMemory(), service.Unavailable(assert.AnError), log)
	r := newRouter(log, reg, health.New(), handler.New(svc, order.NewMethodClassifier(nil), log))

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("record round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/case-records", strings.NewReader(`{"increment_id":"1000123"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/1000123/case-record", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
	})

	t.Run("submission with unavailable client", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/cases", strings.NewReader(
			`{"increment_id":"1000124","billing_address":{"city":"Austin"},"payment":{"method":"checkmo"}}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"failed"`)
	})
}
