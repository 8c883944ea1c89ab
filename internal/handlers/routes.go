package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SaveHandler Handler
	GetHandler  Handler
}

// SetupRoutes configures the entry routes and the health check
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "entries-api",
			"timestamp": time.Now().UTC(),
		})
	})

	save := GinHandler(config.SaveHandler)
	get := GinHandler(config.GetHandler)

	entries := router.Group("/entries")
	{
		entries.GET("/:id", get)
		entries.PUT("/:id", save)

		// Without an id both flows answer 400
		entries.GET("", get)
		entries.PUT("", save)
	}
}
