package middleware

import (
	"context"
	"strings"

	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

type ctxKey struct{}

var userIDKey ctxKey

// TokenVerifier turns a raw bearer token into the user id it was issued for.
type TokenVerifier interface {
	ParseToken(token string) (string, error)
}

// AuthMiddleware guards protected routes. No credential yields 401; a
// credential that fails verification yields 403. On success the user id is
// stored in the request context.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Access token required")
			return
		}

		scheme, tokenString, _ := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if strings.EqualFold(scheme, "Bearer") && tokenString == "" {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Access token required")
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			utils.TrackAuthAttempt("failure", "token")
			utils.Forbidden(c, "Invalid or expired token")
			return
		}

		userID, err := tokens.ParseToken(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			Logger(c).WithError(err).Debug("rejected access token")
			utils.Forbidden(c, "Invalid or expired token")
			return
		}

		utils.TrackAuthAttempt("success", "token")
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns "" outside an authenticated request.
func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey).(string)
	return uid
}
