//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"meeting-scheduler/internal/handler/middleware"
	"meeting-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware_TestConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	var handler gin.HandlerFunc
	require.NotPanics(t, func() {
		handler = middleware.NewCORSMiddleware(cfg.CORS)
	})

	r := gin.New()
	r.Use(handler)
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "X-Operator-ID")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
