package main

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewGormConfig(t *testing.T) {
	cfg := newGormConfig()

	// A raw postgres unique violation does not satisfy the sentinel the
	// repositories match on; only the ORM's error translation produces
	// gorm.ErrDuplicatedKey. If translation is ever switched off again,
	// duplicate-email signup and double tag assignment degrade from 409
	// to 500.
	pgUniqueViolation := &pgconn.PgError{Code: "23505"}
	assert.False(t, errors.Is(pgUniqueViolation, gorm.ErrDuplicatedKey))
	assert.True(t, cfg.TranslateError)

	assert.Equal(t, time.UTC, cfg.NowFunc().Location())
}
