//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := middleware.NewRateLimiter(cfg, nil)
	router.POST("/bookings", limiter.Strict("bookings_create"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRateLimiter_Strict(t *testing.T) {
	t.Run("blocks after the limit", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{Enabled: true, Strict: 2, Period: time.Minute})

		for range 2 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		router := newLimitedRouter(config.RateLimitConfig{Enabled: false, Strict: 1, Period: time.Minute})

		for range 5 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/bookings", nil, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	})
}
