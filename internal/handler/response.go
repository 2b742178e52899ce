package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope for every API reply.
type Response struct {
	Success     bool      `json:"success"`
	Data        any       `json:"data,omitempty"`
	Error       string    `json:"error,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

func dataResponse(c *gin.Context, data any) Response {
	return Response{
		Success:     true,
		Data:        data,
		RequestID:   c.GetString(requestIDKey),
		ProcessedAt: time.Now().UTC(),
	}
}

func errorResponse(c *gin.Context, msg string) Response {
	return Response{
		Success:     false,
		Error:       msg,
		RequestID:   c.GetString(requestIDKey),
		ProcessedAt: time.Now().UTC(),
	}
}
