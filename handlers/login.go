package handlers

import (
	"errors"
	"net/http"

	"edgeapi/services/bookla"
	"edgeapi/services/identity"

	"github.com/gin-gonic/gin"
)

// Login exchanges the caller's Outseta identity for a Bookla client session
// and returns the raw session payload. This is the minimal instance of the
// bridge pattern; cancel and my-bookings build on the same steps.
func (h *BridgeHandler) Login(c *gin.Context) {
	token := identity.BearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No Outseta token"})
		return
	}

	claims, err := h.Verifier.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Outseta token"})
		return
	}
	if !claims.Complete() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token missing email/sub"})
		return
	}

	session, err := h.Bookla.Login(c.Request.Context(), claims.Email, claims.Subject)
	if err != nil {
		var cfgErr *bookla.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": cfgErr.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": session})
}
