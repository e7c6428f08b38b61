package handler

import (
	"errors"
	"fmt"
	"net/http"

	"minimal_api/internal/model"
	"minimal_api/internal/service"
	"minimal_api/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated administrators
type TokenIssuer interface {
	GenerateToken(admin *model.Administrator) (string, error)
}

// AdministratorHandler handles login and administrator management
type AdministratorHandler struct {
	service service.AdministratorService
	tokens  TokenIssuer
	log     *zap.Logger
}

// NewAdministratorHandler creates a new AdministratorHandler
func NewAdministratorHandler(s service.AdministratorService, tokens TokenIssuer, log *zap.Logger) *AdministratorHandler {
	return &AdministratorHandler{service: s, tokens: tokens, log: log}
}

func (h *AdministratorHandler) Login(c *gin.Context) {
	var req model.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	admin, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	token, err := h.tokens.GenerateToken(admin)
	if err != nil || token == "" {
		h.log.Error("token issuance failed, check JWT_SECRET_KEY", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, model.LoggedAdministrator{
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	})
}

func (h *AdministratorHandler) List(c *gin.Context) {
	page, err := optionalPage(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	admins, err := h.service.ListPaged(c.Request.Context(), page)
	if err != nil {
		h.log.Error("listing administrators failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve administrators"})
		return
	}

	views := make([]model.AdministratorView, 0, len(admins))
	for i := range admins {
		views = append(views, model.NewAdministratorView(&admins[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *AdministratorHandler) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	admin, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAdministratorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("finding administrator failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve administrator"})
		return
	}
	c.JSON(http.StatusOK, model.NewAdministratorView(admin))
}

func (h *AdministratorHandler) Create(c *gin.Context) {
	var req model.AdministratorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if msgs := validation.Administrator(req); len(msgs) > 0 {
		badRequest(c, msgs...)
		return
	}

	admin, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("creating administrator failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create administrator"})
		return
	}

	c.Header("Location", fmt.Sprintf("/administradores/%d", admin.ID))
	c.JSON(http.StatusCreated, model.NewAdministratorView(admin))
}

// RegisterAdministratorRoutes registers login (anonymous) and the admin-only management routes
func (h *AdministratorHandler) RegisterAdministratorRoutes(r gin.IRouter, authMW, adminMW gin.HandlerFunc) {
	admins := r.Group("/administradores")
	{
		admins.POST("/login", h.Login)
		admins.GET("", authMW, adminMW, h.List)
		admins.GET("/:id", authMW, adminMW, h.GetByID)
		admins.POST("", authMW, adminMW, h.Create)
	}
}
