package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"edgeapi/models"
	"edgeapi/services/bookla"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MyBookings is the core bridge flow: decode identity, log in to Bookla,
// fetch the caller's bookings, optionally filter to upcoming confirmed
// ones, enrich with display names (best effort), and return them sorted by
// start time.
func (h *BridgeHandler) MyBookings(c *gin.Context) {
	upcomingOnly := strings.EqualFold(c.Query("upcomingOnly"), "true")

	claims := h.bearerClaims(c)
	if !claims.Complete() {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized (missing/invalid Outseta token)"})
		return
	}

	ctx := c.Request.Context()
	session, err := h.Bookla.Login(ctx, claims.Email, claims.Subject)
	if err != nil {
		var cfgErr *bookla.ConfigError
		var upErr *bookla.UpstreamError
		switch {
		case errors.As(err, &cfgErr):
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": cfgErr.Error()})
		case errors.As(err, &upErr):
			c.JSON(upErr.Status, gin.H{"ok": false, "error": "Bookla login failed", "detail": upErr.Detail})
		default:
			h.Logger.Error("bookla login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Bookla login failed"})
		}
		return
	}

	bookings, err := h.Bookla.ListScheduledBookings(ctx, session.AccessToken)
	if err != nil {
		var upErr *bookla.UpstreamError
		if errors.As(err, &upErr) {
			c.JSON(upErr.Status, gin.H{"ok": false, "error": "Bookla bookings failed", "detail": upErr.Detail})
			return
		}
		h.Logger.Error("bookla bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Bookla bookings failed"})
		return
	}

	if upcomingOnly {
		bookings = filterUpcoming(bookings, time.Now())
	}

	// Best effort; an empty LabelMaps just leaves the labels null.
	labels := h.Bookla.LoadLabelMaps(ctx)
	for i := range bookings {
		bookings[i].Enrich(labels.Services, labels.Resources)
	}

	sortByStartTime(bookings)

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"data": gin.H{
			"total":    len(bookings),
			"bookings": bookings,
		},
	})
}

// filterUpcoming keeps bookings that are confirmed and start strictly
// after now.
func filterUpcoming(bookings []models.Booking, now time.Time) []models.Booking {
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusConfirmed && b.StartsAt().After(now) {
			kept = append(kept, b)
		}
	}
	return kept
}

// sortByStartTime orders bookings ascending by start time. The sort is
// stable so equal start times keep their upstream order.
func sortByStartTime(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartsAt().Before(bookings[j].StartsAt())
	})
}
