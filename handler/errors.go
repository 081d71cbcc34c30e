package handler

import (
	"errors"
	"net/http"

	"github.com/dododo1295/tonotes-api/middleware"
	"github.com/dododo1295/tonotes-api/usecase"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingMessage picks the client message for a failed bind. fieldMessages
// maps struct field names to messages; the first failing field wins.
func bindingMessage(err error, fieldMessages map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if msg, ok := fieldMessages[fe.Field()]; ok {
				return msg
			}
		}
	}
	return fallback
}

// bindFailed answers a request whose body could not be bound. A body cut
// off by the size limit is reported as 413, anything else as 400 message.
func bindFailed(c *gin.Context, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.RequestTooLarge(c, "Request body too large")
		return
	}
	utils.BadRequest(c, message)
}

// respondError maps service errors onto HTTP responses. Anything unexpected
// is logged and reported as a bare 500.
func respondError(c *gin.Context, err error, operation string) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.BadRequest(c, verr.Message)
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.BadRequest(c, "User with this email already exists")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, usecase.ErrNoteNotFound):
		utils.NotFound(c, "Note not found")
	default:
		middleware.Logger(c).WithError(err).WithField("operation", operation).Error("request failed")
		utils.TrackError("http", operation)
		utils.InternalError(c)
	}
}
