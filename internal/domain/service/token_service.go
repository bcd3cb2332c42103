package service

import (
	"time"
)

// TokenTypeBearer is the token_type returned to clients.
const TokenTypeBearer = "bearer"

// Claims is the verified content of an access token.
type Claims struct {
	Subject   string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed access token.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	// IssueToken signs a token for subject. An empty subject is a contract
	// violation and fails with ErrInvalidArgument.
	IssueToken(subject string) (*IssuedToken, error)

	// ValidateToken checks signature and expiry and returns the claims.
	// Every failure is ErrUnauthenticated.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of access tokens.
	TokenTTL() time.Duration
}
