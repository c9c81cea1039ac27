package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-pricing/internal/handler/api"
	"venue-pricing/internal/handler/middleware"
	"venue-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, estimateHandler *api.EstimateHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, estimateHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, estimateHandler *api.EstimateHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/estimates", Handler: estimateHandler.PriceBatch},
			{Method: http.MethodGet, Path: "/catalog/rooms", Handler: estimateHandler.ListRooms},
		})
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
