// Package router wires handlers, middleware and metrics into a gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipefy/backend/internal/api"
	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/middleware"
	"github.com/recipefy/backend/internal/service"
)

// Dependencies holds everything SetupRouter needs. Redis and Store may be
// nil: rate limiting and media uploads are then disabled.
type Dependencies struct {
	DB              *gorm.DB
	Redis           *redis.Client
	Store           service.ObjectStore
	MediaPrefix     string
	TokenValidator  middleware.TokenValidator
	Metrics         *metrics.Collector
	Logger          *zap.Logger
	FrontendOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	log := deps.Logger
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(deps.Metrics.HTTPMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.FrontendOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	recipes := service.NewRecipeService(deps.DB, log)
	settings := service.NewSettingsService(deps.DB, log)
	views := service.NewRecipeViewService(recipes, settings, deps.Metrics)
	shopping := service.NewShoppingListService(deps.DB, recipes, log, deps.Metrics)
	collections := service.NewCollectionService(deps.DB, log)
	media := service.NewMediaService(deps.Store, recipes, deps.MediaPrefix, log)

	var creationLimits, syncLimits *middleware.RateLimiter
	if deps.Redis != nil {
		creationLimits = middleware.NewRecipeCreationRateLimiter(deps.Redis, log)
		syncLimits = middleware.NewListSyncRateLimiter(deps.Redis, log)
	}

	router.GET("/health", api.NewHealthHandler(deps.DB).HealthCheck)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	api.NewQuantityHandler(deps.Metrics).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenValidator))
	api.NewRecipeHandler(recipes, views, media, creationLimits).RegisterRoutes(protected)
	api.NewShoppingListHandler(shopping, syncLimits).RegisterRoutes(protected)
	api.NewSettingsHandler(settings).RegisterRoutes(protected)
	api.NewCollectionHandler(collections, syncLimits).RegisterRoutes(protected)

	return router
}
