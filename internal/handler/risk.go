package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/furfindr/internal/domain"
	"github.com/furfindr/internal/report"
	"github.com/furfindr/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluateRequest is the body of POST /api/v1/evaluate. An omitted profile,
// or omitted profile fields, take DefaultProfile values.
type EvaluateRequest struct {
	Profile domain.HouseholdProfile `json:"profile"`
	Animal  domain.AnimalRecord     `json:"animal"`
}

// RankRequest is the body of POST /api/v1/rank.
type RankRequest struct {
	Profile domain.HouseholdProfile `json:"profile"`
	Animals []domain.AnimalRecord   `json:"animals"`
}

// CompareRequest is the body of POST /api/v1/compare.
type CompareRequest struct {
	Profile domain.HouseholdProfile `json:"profile"`
	First   domain.AnimalRecord     `json:"first"`
	Second  domain.AnimalRecord     `json:"second"`
}

// RiskHandler serves the compatibility risk endpoints.
type RiskHandler struct {
	assessor *service.Assessor
	renderer *report.Renderer
	logger   *zap.Logger
}

// NewRiskHandler creates a new RiskHandler. The renderer serves
// ?format=text on the evaluate endpoint.
func NewRiskHandler(assessor *service.Assessor, renderer *report.Renderer, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		assessor: assessor,
		renderer: renderer,
		logger:   logger.Named("risk_handler"),
	}
}

// Evaluate processes POST /api/v1/evaluate requests.
func (h *RiskHandler) Evaluate(c *gin.Context) {
	startTime := time.Now()
	logger := h.requestLogger(c)

	req := EvaluateRequest{Profile: domain.DefaultProfile()}
	if !h.bind(c, logger, &req) {
		return
	}

	assessment := h.assessor.Assess(c.Request.Context(), req.Profile, req.Animal)

	logger.Info("evaluation completed",
		zap.String("assessment_id", assessment.ID),
		zap.String("risk_level", string(assessment.Result.RiskLevel)),
		zap.Duration("duration", time.Since(startTime)),
	)

	if strings.EqualFold(c.Query("format"), "text") {
		text, err := h.renderer.Render(assessment.Result)
		if err != nil {
			logger.Error("report rendering failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorResponse(c, "Internal error while rendering report"))
			return
		}
		c.String(http.StatusOK, text)
		return
	}

	c.JSON(http.StatusOK, dataResponse(c, assessment))
}

// Rank processes POST /api/v1/rank requests.
func (h *RiskHandler) Rank(c *gin.Context) {
	logger := h.requestLogger(c)

	req := RankRequest{Profile: domain.DefaultProfile()}
	if !h.bind(c, logger, &req) {
		return
	}

	ranked, err := h.assessor.Rank(c.Request.Context(), req.Profile, req.Animals)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrEmptyBatch):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrBatchTooLarge):
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn("ranking rejected", zap.Error(err), zap.Int("status", status))
		c.JSON(status, errorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dataResponse(c, ranked))
}

// Compare processes POST /api/v1/compare requests.
func (h *RiskHandler) Compare(c *gin.Context) {
	logger := h.requestLogger(c)

	req := CompareRequest{Profile: domain.DefaultProfile()}
	if !h.bind(c, logger, &req) {
		return
	}

	comparison := h.assessor.Compare(c.Request.Context(), req.Profile, req.First, req.Second)
	c.JSON(http.StatusOK, dataResponse(c, comparison))
}

// TriggerStats processes GET /api/v1/triggers/stats requests.
func (h *RiskHandler) TriggerStats(c *gin.Context) {
	stats, err := h.assessor.TriggerStats(c.Request.Context())
	if err != nil {
		h.requestLogger(c).Error("trigger stats unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, errorResponse(c, "Trigger log unavailable"))
		return
	}
	c.JSON(http.StatusOK, dataResponse(c, stats))
}

// ResetTriggers processes DELETE /api/v1/triggers requests.
func (h *RiskHandler) ResetTriggers(c *gin.Context) {
	h.assessor.ResetTriggers()
	h.requestLogger(c).Info("trigger log cleared")
	c.JSON(http.StatusOK, dataResponse(c, gin.H{"reset": true}))
}

func (h *RiskHandler) requestLogger(c *gin.Context) *zap.Logger {
	return h.logger.With(zap.String("request_id", c.GetString(requestIDKey)))
}

func (h *RiskHandler) bind(c *gin.Context, logger *zap.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("request body too large", zap.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge,
				errorResponse(c, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)))
			return false
		}

		err = domain.WrapError("decode_request", fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse(c, "Invalid request body: "+err.Error()))
		return false
	}
	return true
}
