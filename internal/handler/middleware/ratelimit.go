package middleware

import (
	"log/slog"
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter builds per-route limiters keyed by client IP. Counters live in
// Redis when a client is configured so that every instance shares them.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	client *redis.Client
}

func NewRateLimiter(cfg config.RateLimitConfig, client *redis.Client) *RateLimiter {
	return &RateLimiter{cfg: cfg, client: client}
}

// Strict limits sensitive routes such as reservation and payment callbacks.
func (r *RateLimiter) Strict(routeID string) gin.HandlerFunc {
	if !r.cfg.Enabled {
		return passThrough
	}

	rate := limiter.Rate{Period: r.cfg.Period, Limit: r.cfg.Strict}
	store, err := r.store(routeID)
	if err != nil {
		slog.Error("failed to create rate limit store, limiter disabled",
			"route", routeID,
			"error", err.Error())
		return passThrough
	}

	return ginmiddleware.NewMiddleware(
		limiter.New(store, rate),
		ginmiddleware.WithLimitReachedHandler(limitReached),
		ginmiddleware.WithErrorHandler(limiterFailed),
	)
}

func (r *RateLimiter) store(routeID string) (limiter.Store, error) {
	opts := limiter.StoreOptions{
		Prefix:          "rate_limiter:" + routeID,
		MaxRetry:        3,
		CleanUpInterval: r.cfg.Period,
	}
	if r.client == nil {
		return memory.NewStoreWithOptions(opts), nil
	}
	return redisstore.NewStoreWithOptions(r.client, opts)
}

func limitReached(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests, please try again later", nil)
}

func limiterFailed(c *gin.Context, err error) {
	slog.Error("rate limiter store error", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
}

func passThrough(c *gin.Context) {
	c.Next()
}
