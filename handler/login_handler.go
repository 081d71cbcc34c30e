package handler

import (
	"github.com/dododo1295/tonotes-api/dto"
	"github.com/dododo1295/tonotes-api/usecase"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "Please provide both email and password")
		return
	}

	result, err := userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"accessToken": result.AccessToken,
		"user":        dto.ToUserResponse(result.User),
	})
}
