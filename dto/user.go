package dto

import "github.com/dododo1295/tonotes-api/model"

type CreateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.UserID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}
