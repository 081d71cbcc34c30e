package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dododo1295/tonotes-api/model"
	"github.com/dododo1295/tonotes-api/repository"
	"github.com/dododo1295/tonotes-api/services"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/google/uuid"
)

type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

type UserService struct {
	UsersRepo UsersRepository
	Tokens    TokenIssuer
}

// AuthResult is returned by account creation and login.
type AuthResult struct {
	User        *model.User
	AccessToken string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new user and issues an access token.
func (s *UserService) CreateAccount(ctx context.Context, fullName, email, password string) (*AuthResult, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, invalid("Please provide all required fields: fullName, email, and password")
	}

	existing, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "signup")
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same address.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.TrackAuthAttempt("failure", "signup")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("add user: %w", err)
	}

	token, err := s.Tokens.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	utils.TrackAuthAttempt("success", "signup")
	return &AuthResult{User: user, AccessToken: token}, nil
}

// Login checks the credentials and issues a fresh access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("Please provide both email and password")
	}

	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil && !errors.Is(err, services.ErrInvalidHash) {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	utils.TrackAuthAttempt("success", "login")
	return &AuthResult{User: user, AccessToken: token}, nil
}
