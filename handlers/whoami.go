package handlers

import (
	"net/http"

	"edgeapi/services/identity"

	"github.com/gin-gonic/gin"
)

// WhoAmI echoes the identity carried by the bearer credential, mainly for
// debugging frontend auth wiring.
func (h *BridgeHandler) WhoAmI(c *gin.Context) {
	token := identity.BearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token"})
		return
	}

	claims, err := h.Verifier.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"sub":        orNull(claims.Subject),
		"email":      orNull(claims.Email),
		"rawPayload": claims.Raw,
	})
}
