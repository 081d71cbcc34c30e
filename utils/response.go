package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success bodies mirror the shape clients of the notes API already parse:
// {"error": false, "message": "...", <payload keys>}.
func success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{
		"error":   false,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Success(c *gin.Context, message string, payload gin.H) {
	success(c, http.StatusOK, message, payload)
}

func Created(c *gin.Context, message string, payload gin.H) {
	success(c, http.StatusCreated, message, payload)
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// Error responses. Each aborts the handler chain.

func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

func RequestTooLarge(c *gin.Context, message string) {
	fail(c, http.StatusRequestEntityTooLarge, message)
}

// InternalError never echoes the underlying cause to the client.
func InternalError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Internal server error")
}

func ServiceUnavailable(c *gin.Context, payload gin.H) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, payload)
}
