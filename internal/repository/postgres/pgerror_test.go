package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23503"})))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("23503")))
}

func TestClassifyWriteError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	err := classifyWriteError(fk)
	assert.ErrorIs(t, err, domain.ErrUnknownUser)
	assert.ErrorIs(t, err, fk)

	plain := errors.New("syntax error")
	assert.Same(t, plain, classifyWriteError(plain))
}
