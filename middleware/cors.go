package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware is the admission gate run before every handler. Origins on
// the allow-list are echoed back; entries of the form "https://*.base"
// match any subdomain of base. An unmatched origin currently falls back to
// a wildcard header rather than being denied — a known policy gap kept for
// parity with the deployed behavior; tightening it is a behavior change
// that belongs to the service owner.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowOrigin := "*"
		if origin := c.GetHeader("Origin"); origin != "" && originAllowed(allowed, origin) {
			allowOrigin = origin
		}

		c.Header("Access-Control-Allow-Origin", allowOrigin)
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == origin {
			return true
		}
		if base, ok := strings.CutPrefix(a, "https://*."); ok {
			if strings.HasSuffix(origin, "."+base) {
				return true
			}
		}
	}
	return false
}
