package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"casebridge/internal/fraudcase/client"
	"casebridge/internal/fraudcase/handler"
	fraudmetrics "casebridge/internal/fraudcase/metrics"
	"casebridge/internal/fraudcase/publisher"
	"casebridge/internal/fraudcase/service"
	"casebridge/internal/order"
	"casebridge/internal/platform/config"
	"casebridge/internal/platform/health"
	"casebridge/internal/platform/kafka/producer"
	"casebridge/internal/platform/logger"
	httpmetrics "casebridge/internal/platform/metrics"
	"casebridge/internal/platform/middleware"
	"casebridge/internal/platform/tracer"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in internal/fraudcase.
func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing casebridge",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"case_store", cfg.CaseStore,
	)

	reg := prometheus.DefaultRegisterer
	probes := health.New()

	store, err := openStore(ctx, cfg, reg, probes)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			log.Warn("failed to close case store", "error", err)
		}
	}()

	opts := []service.Option{
		service.WithMetrics(fraudmetrics.New(reg)),
		service.WithTracer(tracer.NewOTel()),
	}

	if cfg.Kafka.Enabled() {
		prod, err := producer.New(cfg.Kafka, log)
		if err != nil {
			return fmt.Errorf("init outcome producer: %w", err)
		}
		defer func() {
			if err := prod.Close(); err != nil {
				log.Warn("failed to close outcome producer", "error", err)
			}
		}()
		probes.RegisterCheck("kafka", prod.Healthy)
		opts = append(opts, service.WithPublisher(publisher.NewKafka(prod, cfg.Kafka.Topic)))
		log.Info("submission outcome events enabled", "topic", cfg.Kafka.Topic)
	}

	svc := service.NewService(store.Store, submitterState(cfg, log), log, opts...)

	router := newRouter(log, reg, probes, handler.New(svc, order.NewMethodClassifier(cfg.CardMethods), log))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.SubmissionTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if store.background != nil {
		g.Go(func() error { return store.background(gctx) })
	}
	return g.Wait()
}

// submitterState builds the fraud service client once. A construction
// failure is logged here and every later submission reports it as a failure.
func submitterState(cfg config.Server, log *slog.Logger) service.SubmitterState {
	c, err := client.New(config.EnvScope{}, log,
		client.WithTimeout(cfg.SubmissionTimeout),
		client.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		log.Error("fraud service client unavailable; cases will not be submitted", "error", err)
		return service.Unavailable(err)
	}
	return service.Available(c)
}

func newRouter(log *slog.Logger, reg prometheus.Registerer, probes *health.Handler, cases *handler.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(httpmetrics.NewHTTP(reg)))

	probes.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		cases.Register(r)
	})
	return r
}
