// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserUsecase defines the account management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
