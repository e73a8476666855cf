package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"dropengine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the latest public error a handler attached without
// responding. Private errors are logged and answered with a generic 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		logger.Error("Unhandled request error",
			"request_id", GetRequestID(c),
			"path", c.FullPath(),
			"errors", c.Errors.String())

		if status := c.Writer.Status(); status >= http.StatusBadRequest {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.Internal()
		c.JSON(resp.Status, resp)
	}
}

// Recovery turns a panic anywhere below it into a 500.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error("Recovered from panic",
				"panic", rec,
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			resp := httperr.Internal()
			c.AbortWithStatusJSON(resp.Status, resp)
		}()
		c.Next()
	}
}
