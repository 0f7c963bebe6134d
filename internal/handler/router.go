package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
}

func NewHandlers(booking *api.BookingHandler, payment *api.PaymentHandler) Handlers {
	return Handlers{Booking: booking, Payment: payment}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limiter.Strict("bookings_create")}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff(), limiter.Strict("bookings_cancel")}},
				{Method: http.MethodPost, Path: "/:id/cancel-request", Handler: h.Booking.RequestCancellation},
			})
		}

		// gateway redirects carry no token; the transaction is re-verified instead
		payments := apiGroup.Group("/payments")
		{
			callbackLimit := limiter.Strict("payment_callbacks")
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/success", Handler: h.Payment.Success, Mw: []gin.HandlerFunc{callbackLimit}},
				{Method: http.MethodPost, Path: "/fail", Handler: h.Payment.Fail, Mw: []gin.HandlerFunc{callbackLimit}},
				{Method: http.MethodGet, Path: "/cancel", Handler: h.Payment.Cancel, Mw: []gin.HandlerFunc{callbackLimit}},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireStaff()}},
			})
		}

		me := apiGroup.Group("/users/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.ListMine},
			})
		}

		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "/:roomId/booked-dates", Handler: h.Booking.BookedDates},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
