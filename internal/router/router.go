// Package router sets up HTTP routes for the API.
package router

import (
	"context"
	"net/http"

	_ "wastetrack/swagger" // Import generated swagger docs

	"wastetrack/internal/handler"
	"wastetrack/internal/middleware"
	"wastetrack/internal/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports whether the primary store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TeamHandler      *handler.TeamHandler
	WasteLogHandler  *handler.WasteLogHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ReportHandler    *handler.ReportHandler
	Sessions         middleware.SessionValidator
	DB               Pinger
}

// Setup creates and configures the Gin router. Role gates here are coarse
// pre-checks for routes whose permission set is uniform; the services apply
// the full per-resource rules either way.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the WasteTrack API", "docs": "/docs/index.html"})
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if cfg.DB != nil {
			if err := cfg.DB.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		authn := middleware.Auth(cfg.Sessions)
		adminOnly := middleware.RequireRoles(models.RoleAdmin)
		managersUp := middleware.RequireRoles(models.RoleManager, models.RoleAdmin)

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(authn)
		{
			users.POST("", adminOnly, cfg.UserHandler.CreateUser)
			users.GET("", adminOnly, cfg.UserHandler.ListUsers)
			users.GET("/me", cfg.UserHandler.GetCurrentUser)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PATCH("/:id", adminOnly, cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", adminOnly, cfg.UserHandler.DeleteUser)
			users.POST("/:id/invalidate-token", cfg.UserHandler.InvalidateToken)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(authn)
		{
			teams.POST("", adminOnly, cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)
			teams.GET("/:id", cfg.TeamHandler.GetTeam)
			teams.PATCH("/:id", adminOnly, cfg.TeamHandler.UpdateTeam)
			teams.DELETE("/:id", adminOnly, cfg.TeamHandler.DeleteTeam)
		}

		// Waste log routes (protected)
		wasteLogs := v1.Group("/waste-logs")
		wasteLogs.Use(authn)
		{
			wasteLogs.POST("", cfg.WasteLogHandler.CreateWasteLog)
			wasteLogs.GET("", adminOnly, cfg.WasteLogHandler.ListWasteLogs)
			wasteLogs.GET("/:id", cfg.WasteLogHandler.GetWasteLog)
			wasteLogs.PATCH("/:id", adminOnly, cfg.WasteLogHandler.UpdateWasteLog)
			wasteLogs.DELETE("/:id", adminOnly, cfg.WasteLogHandler.DeleteWasteLog)
		}

		// Analytics routes (protected, managers and admins)
		analytics := v1.Group("/analytics")
		analytics.Use(authn, managersUp)
		{
			analytics.GET("/team-logs", cfg.AnalyticsHandler.TeamLogs)
			analytics.GET("/team-summary", cfg.AnalyticsHandler.TeamSummary)
		}

		// Report routes (protected)
		reports := v1.Group("/reports")
		reports.Use(authn)
		{
			reports.POST("", managersUp, cfg.ReportHandler.CreateReport)
			reports.GET("/:id", cfg.ReportHandler.GetReport)
		}
	}

	return r
}
