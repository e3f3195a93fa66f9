package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiran-dev/eventman/internal/auth"
	"github.com/kiran-dev/eventman/internal/models"
	"github.com/kiran-dev/eventman/internal/security"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var registerMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Invalid email address",
	"password": "Password must be at least 6 characters",
}

type AuthService struct {
	users      models.UserRepo
	tokens     *auth.Manager
	bcryptCost int
}

func NewAuthService(users models.UserRepo, tokens *auth.Manager, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user account. The password is bcrypt-hashed exactly
// once, here; the plaintext never reaches the store.
func (as *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if ve := validateStruct(req, registerMessages); ve != nil {
		return ve
	}

	_, err := as.users.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := security.HashPassword(req.Password, as.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if _, err := as.users.CreateUser(ctx, user); err != nil {
		// Lost the race against a concurrent signup with the same email.
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Login checks credentials and issues a signed token embedding the user's
// id and email. Lookup and compare failures are indistinguishable to the
// caller.
func (as *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := as.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error finding user: %w", err)
	}

	if err := security.CheckPassword(user.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}
