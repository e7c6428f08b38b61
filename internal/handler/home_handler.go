package handler

import (
	"context"
	"net/http"

	"minimal_api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const homeMessage = "Bem vindo a API de veículos - Minimal API"

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves the anonymous root and health routes
type HomeHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHomeHandler(db Pinger, log *zap.Logger) *HomeHandler {
	return &HomeHandler{db: db, log: log}
}

func (h *HomeHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, model.Home{
		Message: homeMessage,
		Doc:     "/swagger",
		Version: "v1",
	})
}

func (h *HomeHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}

func (h *HomeHandler) RegisterHomeRoutes(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/health", h.Health)
}
