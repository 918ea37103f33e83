package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-store/internal/shared/server/respond"
	"resume-store/internal/shared/telemetry"
)

// Recovery converts panics into a generic server error. No detail from the
// fault is leaked to the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				respond.Error(c, http.StatusInternalServerError, "Something went wrong!", "")
				c.Abort()
			}
		}()
		c.Next()
	}
}
