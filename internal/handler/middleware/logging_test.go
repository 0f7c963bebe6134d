//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObservedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})
	t.Cleanup(func() { _ = logger.Close() })

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(logger.LoggingMiddleware())
	router.Use(middleware.ErrorHandler())
	router.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	router := newObservedRouter(t)

	t.Run("generated when the caller sends none", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/echo", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("caller supplied id is propagated", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rec := stdhttptest.NewRecorder()

		router.ServeHTTP(rec, req)

		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-42"})
		assert.Equal(t, "req-42", rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	router := newObservedRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
		wantCreds string
	}{
		{name: "listed origin", origins: []string{"http://front.test"}, origin: "http://front.test", wantAllow: "http://front.test", wantCreds: "true"},
		{name: "unlisted origin", origins: []string{"http://front.test"}, origin: "http://evil.test", wantAllow: "", wantCreds: ""},
		{name: "wildcard drops credentials", origins: []string{"*"}, origin: "http://any.test", wantAllow: "*", wantCreds: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.AllowOrigins = tt.origins
			router := gin.New()
			router.Use(middleware.NewCORSMiddleware(cfg))
			router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := stdhttptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			rec := stdhttptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
