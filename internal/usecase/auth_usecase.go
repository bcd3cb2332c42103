package usecase

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token generated after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase covers password login and bearer session resolution.
type AuthUsecase interface {
	// Authenticate returns the user whose email and password match.
	// Unknown email and wrong password fail with the same ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// Login authenticates and issues an access token for the user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveSession validates a bearer token and loads its user.
	ResolveSession(ctx context.Context, token string) (*entity.User, error)
}
