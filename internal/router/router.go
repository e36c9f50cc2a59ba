package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Harsha51888/attendance-tracker/internal/config"
	"github.com/Harsha51888/attendance-tracker/internal/handler"
	"github.com/Harsha51888/attendance-tracker/internal/middleware"
	"github.com/Harsha51888/attendance-tracker/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Subject *handler.SubjectHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the API (60 requests per minute per IP).
	apiLimiter := middleware.NewRateLimiter(60, time.Minute)

	// ─── Subjects ──────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(apiLimiter.Middleware())
	{
		api.GET("/subjects", handlers.Subject.List)
		api.POST("/subjects", handlers.Subject.Create)
		api.POST("/subjects/:position/classes", handlers.Subject.MarkClass)
		api.DELETE("/subjects/:position", handlers.Subject.Delete)
	}

	return router
}
