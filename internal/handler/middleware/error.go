package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"hotel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error left by a handler that aborted
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.StatusCode, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

// CustomRecovery turns a panic into the standard error body. A panic inside a
// reservation leaves the transaction to be rolled back by the unit of work.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
			c.Abort()
		}()
		c.Next()
	}
}
