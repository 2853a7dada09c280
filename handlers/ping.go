package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the health check.
func (h *BridgeHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "pong"})
}
