package handler

import (
	"github.com/dododo1295/tonotes-api/dto"
	"github.com/dododo1295/tonotes-api/usecase"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

const missingAccountFields = "Please provide all required fields: fullName, email, and password"

func CreateAccountHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, missingAccountFields)
		return
	}

	result, err := userService.CreateAccount(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "create_account")
		return
	}

	utils.Created(c, "Account created successfully", gin.H{
		"accessToken": result.AccessToken,
		"user":        dto.ToUserResponse(result.User),
	})
}
