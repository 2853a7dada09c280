package handlers

import (
	"errors"
	"net/http"

	"edgeapi/services/bookla"
	"edgeapi/services/identity"

	"github.com/gin-gonic/gin"
)

// Cancel cancels one booking on behalf of the caller. The upstream response
// is passed through on success; upstream rejections keep their status code.
func (h *BridgeHandler) Cancel(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingID required"})
		return
	}

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

	ctx := c.Request.Context()
	session, err := h.Bookla.Login(ctx, claims.Email, claims.Subject)
	if err != nil {
		var cfgErr *bookla.ConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": cfgErr.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	data, err := h.Bookla.CancelBooking(ctx, session.AccessToken, input.BookingID)
	if err != nil {
		var upErr *bookla.UpstreamError
		if errors.As(err, &upErr) {
			c.JSON(upErr.Status, gin.H{"ok": false, "error": upErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Cancel failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
