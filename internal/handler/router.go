package handler

import (
	"minimal_api/internal/metrics"
	"minimal_api/internal/middleware"
	"minimal_api/internal/service"
	"minimal_api/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterDeps collects everything the HTTP layer needs
type RouterDeps struct {
	Logger         *zap.Logger
	Metrics        *metrics.HTTPMetrics
	JWT            *utils.JWTUtil
	DB             Pinger
	Administrators service.AdministratorService
	Vehicles       service.VehicleService
}

// NewRouter builds the gin engine with the global middleware chain and every route registered
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(),
	)

	jwtAuthMW := middleware.JWTAuthMiddleware(d.JWT, d.Metrics)
	adminRoleMW := middleware.AdminMiddleware(d.Metrics)
	editorRoleMW := middleware.EditorMiddleware(d.Metrics)

	NewHomeHandler(d.DB, d.Logger).RegisterHomeRoutes(router)
	NewAdministratorHandler(d.Administrators, d.JWT, d.Logger).RegisterAdministratorRoutes(router, jwtAuthMW, adminRoleMW)
	NewVehicleHandler(d.Vehicles, d.Logger).RegisterVehicleRoutes(router, jwtAuthMW, editorRoleMW, adminRoleMW)

	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	return router
}
