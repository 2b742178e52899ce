// FurFindr compatibility service - server entry point.
//
// Wires configuration, logging, the rule engine and its trigger log, and
// serves the risk API over HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/furfindr/internal/config"
	"github.com/furfindr/internal/handler"
	"github.com/furfindr/internal/logger"
	"github.com/furfindr/internal/report"
	"github.com/furfindr/internal/rules"
	"github.com/furfindr/internal/service"
	"github.com/furfindr/internal/triggerlog"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Development, cfg.Observability.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting compatibility service",
		zap.Bool("development", cfg.Server.Development),
		zap.String("port", cfg.Server.Port),
		zap.Int("max_batch_size", cfg.Risk.MaxBatchSize),
		zap.Int("max_body_size", cfg.Risk.MaxBodySize),
		zap.Int("display_score_cap", cfg.Risk.DisplayScoreCap),
		zap.Bool("metrics_enabled", cfg.Observability.EnableMetrics),
	)

	recorder, readyCheck, closeRecorder := newRecorder(cfg.TriggerLog, zapLogger)
	defer closeRecorder()

	var metricsHandler http.Handler
	if cfg.Observability.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		metricsRecorder, err := triggerlog.NewMetricsRecorder(recorder, reg)
		if err != nil {
			zapLogger.Fatal("failed to register trigger metrics", zap.Error(err))
		}
		recorder = metricsRecorder
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	engine := rules.NewEngine(rules.DefaultRules(), recorder, zapLogger)

	assessor := service.NewAssessor(engine, service.AssessorConfig{
		MaxBatchSize:    cfg.Risk.MaxBatchSize,
		DisplayScoreCap: cfg.Risk.DisplayScoreCap,
	}, zapLogger)

	renderer, err := report.New(cfg.Risk.DisplayScoreCap)
	if err != nil {
		zapLogger.Fatal("failed to create report renderer", zap.Error(err))
	}

	if !cfg.Server.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Assessor:    assessor,
		Renderer:    renderer,
		RuleCount:   len(engine.Rules()),
		MaxBodySize: int64(cfg.Risk.MaxBodySize),
		Metrics:     metricsHandler,
		ReadyCheck:  readyCheck,
		Logger:      zapLogger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}

// newRecorder builds the configured trigger log. The returned check is nil
// for the in-memory backend.
func newRecorder(cfg config.TriggerLogConfig, zapLogger *zap.Logger) (triggerlog.Recorder, func(context.Context) error, func()) {
	if cfg.Backend != config.TriggerLogRedis {
		return triggerlog.Default(), nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	recorder := triggerlog.NewRedisRecorder(client, cfg.RedisKey, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := recorder.Ping(ctx); err != nil {
		zapLogger.Fatal("trigger log backend unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	zapLogger.Info("trigger log stored in redis",
		zap.String("addr", cfg.RedisAddr),
		zap.String("key", cfg.RedisKey),
	)

	return recorder, recorder.Ping, func() {
		if err := client.Close(); err != nil {
			zapLogger.Warn("closing redis client", zap.Error(err))
		}
	}
}
