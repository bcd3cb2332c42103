package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.AuthMetrics
	logger       *slog.Logger

	absentOnce sync.Once
	absentHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.AuthMetrics
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate looks the user up by email and checks the password.
// Both failure paths return the same ErrInvalidCredentials.
func (srv *authService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		// Spend the same hashing work as a real check so response time does not reveal the account.
		srv.hasher.Check(password, srv.absentUserHash())

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return user, nil
}

// absentUserHash is a hash of a random secret made once with the configured
// hasher, so checking against it costs as much as checking a stored password.
func (srv *authService) absentUserHash() string {
	srv.absentOnce.Do(func() {
		hash, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.logger.Warn("Failed to prepare absent user hash", slog.Any("error", err))

			return
		}
		srv.absentHash = hash
	})

	return srv.absentHash
}

// Login authenticates the credentials and issues an access token whose subject is the user's email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("login input is nil")
	}

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.Authenticate(ctx, email, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.metrics.RecordLogin(service.LoginOutcomeInvalidCredentials)
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", err.Error()))

			return nil, errors.Wrap(err, "login failed")
		}

		srv.metrics.RecordLogin(service.LoginOutcomeError)
		srv.log(ctx).Error("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	issued, err := srv.tokenService.IssueToken(user.Email)
	if err != nil {
		srv.metrics.RecordLogin(service.LoginOutcomeError)
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.metrics.RecordLogin(service.LoginOutcomeSuccess)
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Value,
		TokenType:   service.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// ResolveSession verifies the token and loads its subject fresh from the store.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.metrics.RecordTokenValidation(false)

		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.metrics.RecordTokenValidation(false)

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session user")
	}

	srv.metrics.RecordTokenValidation(true)

	return user, nil
}
