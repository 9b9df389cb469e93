package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitmate/internal/domain"
	"fitmate/internal/service"
)

// ChatHandler mantiene dependencias para el endpoint de chat.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
	limiter  service.ChatRateLimiter
}

// NewChatHandler crea una instancia de ChatHandler. El limiter puede ser nil
// (sin redis configurado): en ese caso no se limita.
func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService, limiter service.ChatRateLimiter) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
		limiter:  limiter,
	}
}

// PostChat maneja POST /chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req struct {
		Message      string                   `json:"message"`
		Personality  string                   `json:"personality"`
		DaysUsingApp int                      `json:"daysUsingApp"`
		Lifestyle    domain.LifestyleSnapshot `json:"lifestyle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		if err != nil {
			h.logger.Warn("invalid chat request", zap.Error(err))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message is required",
		})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "Too many requests",
		})
		return
	}

	resp := h.chatServ.Turn(c.Request.Context(), domain.ChatTurnRequest{
		Message:     req.Message,
		Personality: req.Personality,
		DaysUsing:   req.DaysUsingApp,
		Lifestyle:   req.Lifestyle,
	})

	c.JSON(http.StatusOK, resp)
}
