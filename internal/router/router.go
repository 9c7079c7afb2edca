package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/config"
	"github.com/stemsi/school-registry/internal/handler"
	"github.com/stemsi/school-registry/internal/middleware"
	"github.com/stemsi/school-registry/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	School  *handler.SchoolHandler
	Student *handler.StudentHandler
	Health  *handler.HealthHandler
	// WriteLimiter throttles mutating routes. Nil disables it.
	WriteLimiter *middleware.RateLimiter
}

// SetupRouter configures the Gin engine and all routes.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
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
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware(log))

	router.GET("/health", handlers.Health.Health)

	write := func(c *gin.Context) { c.Next() }
	if handlers.WriteLimiter != nil {
		write = handlers.WriteLimiter.Middleware()
	}

	api := router.Group("/api/v1")
	api.Use(middleware.NoStore())
	{
		api.POST("/schools", write, handlers.School.CreateSchool)
		api.GET("/schools", handlers.School.ListSchools)

		api.POST("/students", write, handlers.Student.CreateStudent)
		api.GET("/students", handlers.Student.ListStudents)
		api.GET("/students/:id", handlers.Student.GetStudent)
		api.GET("/students/search/:name", handlers.Student.SearchStudents)
		api.DELETE("/students/:id", write, handlers.Student.DeleteStudent)
	}

	return router
}
