package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var testOrigins = []string{
	"https://texasedgesports.com",
	"https://*.framer.app",
}

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(testOrigins))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_ExactMatchEchoesOrigin(t *testing.T) {
	w := doRequest(corsRouter(), http.MethodGet, "https://texasedgesports.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://texasedgesports.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_WildcardSubdomainMatch(t *testing.T) {
	w := doRequest(corsRouter(), http.MethodGet, "https://mysite.framer.app")
	assert.Equal(t, "https://mysite.framer.app", w.Header().Get("Access-Control-Allow-Origin"))

	// The bare apex does not match a wildcard entry.
	w = doRequest(corsRouter(), http.MethodGet, "https://framer.app")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnmatchedOriginFallsBackToWildcard(t *testing.T) {
	w := doRequest(corsRouter(), http.MethodGet, "https://evil.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	w := doRequest(corsRouter(), http.MethodOptions, "https://texasedgesports.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "GET,POST,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
