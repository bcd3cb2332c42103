package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(assert.AnError))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf("null value in column \"name\"")))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23505", Message: "duplicate key"}))
}
