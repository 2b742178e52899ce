package handler

import (
	"context"
	"net/http"

	"github.com/furfindr/internal/report"
	"github.com/furfindr/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds what NewRouter wires together.
type RouterConfig struct {
	Assessor  *service.Assessor
	Renderer  *report.Renderer
	RuleCount int

	// MaxBodySize caps request bodies in bytes. Zero disables the cap.
	MaxBodySize int64

	// Metrics serves GET /metrics when non-nil.
	Metrics http.Handler

	// ReadyCheck is consulted by GET /ready when non-nil.
	ReadyCheck func(ctx context.Context) error

	Logger *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(cfg.Logger))
	router.Use(LoggingMiddleware(cfg.Logger))
	router.Use(CORSMiddleware())
	router.Use(BodyLimitMiddleware(cfg.MaxBodySize))

	healthHandler := NewHealthHandler(cfg.Logger)
	readyHandler := NewReadyHandler(cfg.RuleCount, cfg.ReadyCheck, cfg.Logger)
	riskHandler := NewRiskHandler(cfg.Assessor, cfg.Renderer, cfg.Logger)

	router.GET("/health", healthHandler.Handle)
	router.GET("/ready", readyHandler.Handle)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/evaluate", riskHandler.Evaluate)
		v1.POST("/rank", riskHandler.Rank)
		v1.POST("/compare", riskHandler.Compare)
		v1.GET("/triggers/stats", riskHandler.TriggerStats)
		v1.DELETE("/triggers", riskHandler.ResetTriggers)
	}

	return router
}
