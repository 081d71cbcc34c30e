package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
	"github.com/sirupsen/logrus"
)

const (
	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// RequestLogger tags every request with an X-Request-ID, stores a
// request-scoped logger in the gin context and logs one line per request.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		entry := logger.WithField("request_id", requestID)
		c.Set(loggerKey, entry)

		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := logrus.Fields{
			"method":    c.Request.Method,
			"route":     route,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
			"browser":   ua.Name,
			"os":        ua.OS,
			"bot":       ua.Bot,
		}
		if uid := UserIDFromContext(c.Request.Context()); uid != "" {
			fields["user_id"] = uid
		}

		reqLog := entry.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("request completed")
		case status >= 400:
			reqLog.Warn("request completed")
		default:
			reqLog.Info("request completed")
		}
	}
}

// Logger returns the request-scoped logger, or the standard logger when
// RequestLogger is not installed.
func Logger(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.StandardLogger()
}
