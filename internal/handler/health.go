package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger.Named("health_handler"),
	}
}

// Handle processes GET /health requests.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyHandler handles readiness check requests.
type ReadyHandler struct {
	ruleCount int
	check     func(ctx context.Context) error
	logger    *zap.Logger
}

// NewReadyHandler creates a new ReadyHandler. The service is ready once a
// non-empty rule set is loaded and check, when set, succeeds.
func NewReadyHandler(ruleCount int, check func(ctx context.Context) error, logger *zap.Logger) *ReadyHandler {
	return &ReadyHandler{
		ruleCount: ruleCount,
		check:     check,
		logger:    logger.Named("ready_handler"),
	}
}

// Handle processes GET /ready requests.
func (h *ReadyHandler) Handle(c *gin.Context) {
	if h.ruleCount == 0 {
		h.logger.Warn("readiness check failed: no rules loaded")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	if h.check != nil {
		if err := h.check(c.Request.Context()); err != nil {
			h.logger.Warn("readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  err.Error(),
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"rules":  h.ruleCount,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
