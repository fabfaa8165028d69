package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-log/config"
	httpHandler "payment-log/internal/adapter/http/handler"
	"payment-log/internal/adapter/processor"
	pgStorage "payment-log/internal/adapter/storage/postgres"
	redisStorage "payment-log/internal/adapter/storage/redis"
	"payment-log/internal/core/ports"
	"payment-log/internal/service"
	"payment-log/pkg/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Strs("processors", cfg.ProcessorNames()).
		Msg("Starting payment log API")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if cfg.Migration.OnStart {
		var migrator ports.SchemaMigrator = pgStorage.NewMigrator(pool, cfg.Migration.LockKey, logger.Component(log, "migrator"))
		if err := migrator.Apply(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply payments schema")
		}
	}

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Redis is optional: without it duplicates are caught by the primary key
	// and rate limiting is off.
	var (
		guard          ports.IntakeGuard
		rateLimitStore *redisStorage.RateLimitStore
	)
	if cfg.Redis.Enabled() {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		guard = redisStorage.NewIntakeGuard(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Redis not configured, intake guard and rate limiting disabled")
	}

	repo := pgStorage.NewPaymentLogRepo(pool)

	targets := make([]ports.ProcessorTarget, 0, len(cfg.Processors))
	for _, p := range cfg.Processors {
		targets = append(targets, ports.ProcessorTarget{Name: p.Name, Endpoint: p.Endpoint})
	}

	paymentSvc := service.NewPaymentService(cfg.Worker.QueueSize, guard, cfg.Worker.IntakeTTL, logger.Component(log, "intake"))
	reportingSvc := service.NewReportingService(repo, cfg.ProcessorNames())
	worker := service.NewWorker(
		paymentSvc.Queue(),
		repo,
		processor.NewHTTPClient(&http.Client{Timeout: cfg.Worker.ProcessorTimeout}),
		targets,
		service.WorkerOptions{
			MaxInFlight:      cfg.Worker.MaxInFlight,
			RetryWait:        cfg.Worker.RetryWait,
			AttributeTimeout: cfg.Worker.ProcessorTimeout,
		},
		logger.Component(log, "worker"),
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = worker.Run(workerCtx)
	}()

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		ReportingSvc:   reportingSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// No handler can submit after Shutdown, so intake closes and the worker
	// finishes what it holds unless the grace period runs out first.
	if !drainWorker(shutdownCtx, paymentSvc, workerDone, stopWorker) {
		log.Warn().Msg("Shutdown grace elapsed, in-flight payments cancelled")
	}

	if pending := len(paymentSvc.Queue()); pending > 0 {
		log.Warn().Int("pending", pending).Msg("Payments left in queue at shutdown")
	}
	log.Info().Msg("Server exited")
}

// drainWorker closes intake and waits for the worker to finish. If ctx ends
// first the worker is cancelled. It reports whether the worker finished on its own.
func drainWorker(ctx context.Context, intake interface{ Close() }, workerDone <-chan struct{}, stopWorker context.CancelFunc) bool {
	intake.Close()
	defer stopWorker()

	select {
	case <-workerDone:
		return true
	case <-ctx.Done():
		stopWorker()
		<-workerDone
		return false
	}
}
