package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pantrylist/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, limiter *IPRateLimiter) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(RateLimitMiddleware(limiter))
	}
	{
		products := v1.Group("/products")
		{
			products.GET("", handler.SearchProducts)
			products.POST("", handler.CreateProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		lists := v1.Group("/lists")
		{
			lists.GET("/:list", handler.GetList)
			lists.POST("/:list/items", handler.AddToList)
			lists.DELETE("/:list", handler.ClearList)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.POST("", handler.CreateCategory)
		}

		voice := v1.Group("/voice")
		{
			voice.POST("/resolve", handler.ResolveVoiceCommand)
			voice.POST("/transcripts", handler.ProcessTranscript)
		}
	}

	return router
}
