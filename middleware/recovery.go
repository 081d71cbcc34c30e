package middleware

import (
	"runtime/debug"

	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a panic into a logged 500 response.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger(c).
					WithField("panic", err).
					WithField("stack", string(debug.Stack())).
					Error("recovered from panic")
				utils.TrackError("http", "panic")
				utils.InternalError(c)
			}
		}()
		c.Next()
	}
}
