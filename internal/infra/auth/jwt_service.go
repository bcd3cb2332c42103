package auth

import (
	"strings"
	"time"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It is immutable after construction.
type jwtService struct {
	secret []byte           // HS256 signing key.
	ttl    time.Duration    // Time-to-live for access tokens.
	now    func() time.Time // Clock used for iat/exp and for validation.
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// The signing secret must be supplied from outside; there is no default.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg, time.Now)
}

// NewJWTServiceWithClock is NewJWTService with an explicit clock.
func NewJWTServiceWithClock(cfg *config.Config, now func() time.Time) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if now == nil {
		now = time.Now
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
			// Non-canonical base64 (stray padding bits) must not decode to a valid signature.
			jwt.WithStrictDecoding(),
		),
	}, nil
}

// IssueToken creates a signed access token for subject.
func (s *jwtService) IssueToken(subject string) (*service.IssuedToken, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("token subject must not be empty")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{Value: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidateToken verifies the signature first and only then reads the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("empty token")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, describeParseError(err))
	}
	if !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token is not valid")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token subject is missing")
	}

	out := &service.Claims{
		Subject:   claims.Subject,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}

// TokenTTL returns the configured duration for access tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}

func describeParseError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "failed to parse token structure"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "token signature is invalid"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token signing method is not accepted"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token is expired"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "token is missing a required claim"
	default:
		return "token validation failed"
	}
}
