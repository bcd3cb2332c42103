// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	metrics   service.AuthMetrics
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Metrics   service.AuthMetrics
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the password and inserts the account in one transaction.
// A duplicate email rolls the transaction back and leaves the existing account untouched.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("create user input is nil")
	}

	email := entity.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and password are required")
	}

	srv.log(ctx).Info("Creating user", slog.String("email", email))

	// bcrypt is CPU-bound; keep it out of the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		// The unique index still guards concurrent inserts that pass the check above.
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("User already exists", slog.String("email", email))
		} else {
			srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to execute create user transaction")
	}

	srv.metrics.RecordUserCreated()
	srv.log(ctx).Debug("User created", slog.Int64("userID", user.ID))

	return user, nil
}

// ListUsers returns every account ordered by ID.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns the account with the given ID.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// DeleteUser removes the account with the given ID.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	err := srv.userRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("user not found")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Int64("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	srv.metrics.RecordUserDeleted()
	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return nil
}
