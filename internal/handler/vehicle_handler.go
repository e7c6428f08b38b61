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

// VehicleHandler handles vehicle CRUD requests
type VehicleHandler struct {
	service service.VehicleService
	log     *zap.Logger
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(s service.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{service: s, log: log}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req model.VehicleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if msgs := validation.Vehicle(req); len(msgs) > 0 {
		badRequest(c, msgs...)
		return
	}

	vehicle, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error("creating vehicle failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	c.Header("Location", fmt.Sprintf("/veiculo/%d", vehicle.ID))
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	page, err := optionalPage(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	pageNumber := 1
	if page != nil {
		pageNumber = *page
	}

	vehicles, err := h.service.ListPaged(c.Request.Context(), pageNumber)
	if err != nil {
		h.log.Error("listing vehicles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, ok := h.loadVehicle(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	vehicle, ok := h.loadVehicle(c)
	if !ok {
		return
	}

	var req model.VehicleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if msgs := validation.Vehicle(req); len(msgs) > 0 {
		badRequest(c, msgs...)
		return
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year

	if err := h.service.Update(c.Request.Context(), vehicle); err != nil {
		h.log.Error("updating vehicle failed", zap.Int("id", vehicle.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	vehicle, ok := h.loadVehicle(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), vehicle); err != nil {
		h.log.Error("deleting vehicle failed", zap.Int("id", vehicle.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}
	c.Status(http.StatusNoContent)
}

// loadVehicle resolves the :id path parameter. On failure the response is
// already written and ok is false.
func (h *VehicleHandler) loadVehicle(c *gin.Context) (*model.Vehicle, bool) {
	id, err := pathID(c)
	if err != nil {
		badRequest(c, err.Error())
		return nil, false
	}

	vehicle, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			h.log.Error("finding vehicle failed", zap.Int("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicle"})
		}
		return nil, false
	}
	return vehicle, true
}

// RegisterVehicleRoutes registers vehicle routes. Every route requires a token;
// editorMW admits Adm and Editor, adminMW admits Adm only.
func (h *VehicleHandler) RegisterVehicleRoutes(r gin.IRouter, authMW, editorMW, adminMW gin.HandlerFunc) {
	r.POST("/veiculos", authMW, editorMW, h.Create)
	r.GET("/veiculos", authMW, h.List)

	single := r.Group("/veiculo/:id", authMW)
	{
		single.GET("", editorMW, h.GetByID)
		single.PUT("", adminMW, h.Update)
		single.DELETE("", adminMW, h.Delete)
	}
}
