// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is an account. Email is unique and doubles as the login identifier
// and the token subject.
type User struct {
	ID           int64     // Store-assigned identifier.
	Name         string    // Display name.
	Email        string    // Normalised login email.
	PasswordHash string    // bcrypt hash; the plaintext is never kept.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// NormalizeEmail trims and lower-cases an email so lookups and the unique
// index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
