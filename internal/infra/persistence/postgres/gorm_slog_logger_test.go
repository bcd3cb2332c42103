package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_LevelFromDebug(t *testing.T) {
	assert.Equal(t, logger.Warn, newGormSlogLogger(nil, false).(*gormSlogLogger).level)
	assert.Equal(t, logger.Info, newGormSlogLogger(nil, true).(*gormSlogLogger).level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM users WHERE email = $1", 1 }

	t.Run("error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), false)
		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), assert.AnError.Error())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		newGormSlogLogger(newBufferLogger(&quiet), false).Trace(context.Background(), time.Now(), sqlFn, nil)
		newGormSlogLogger(newBufferLogger(&verbose), true).Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "GORM query")
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&buf), true).LogMode(logger.Silent)
		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := newGormSlogLogger(nil, true).(*gormSlogLogger)

	sql, vars := l.ParamsFilter(context.Background(), "INSERT INTO users VALUES ($1)", "$2a$12$secret")
	assert.Equal(t, "INSERT INTO users VALUES ($1)", sql)
	assert.Nil(t, vars)
}
