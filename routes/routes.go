package routes

import (
	"net/http"

	"edgeapi/config"
	"edgeapi/handlers"
	"edgeapi/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBridgeRoutes registers the Bookla bridge endpoints.
func RegisterBridgeRoutes(r *gin.Engine, h *handlers.BridgeHandler) {
	api := r.Group("/api")
	{
		api.GET("/ping", h.Ping)
		api.GET("/whoami", h.WhoAmI)

		api.POST("/bookla/login", h.Login)
		api.POST("/bookla/my-bookings", h.MyBookings)
		api.POST("/bookla/cancel", h.Cancel)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BridgeHandler) {
	// The CORS gate runs before everything, including preflights.
	r.Use(middleware.CORSMiddleware(config.AppConfig.AllowedOrigins))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Use POST"})
	})

	RegisterBridgeRoutes(r, h)
}
