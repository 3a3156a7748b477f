package postgres

import (
	"errors"
	"fmt"

	"github.com/azkaafiq/consultant-api/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

// isForeignKeyViolation recognises SQLSTATE 23503 from either pgx or lib/pq.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pq.ErrorCode(foreignKeyViolation)
	}
	return false
}

// classifyWriteError tags foreign key violations with domain.ErrUnknownUser.
func classifyWriteError(err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrUnknownUser, err)
	}
	return err
}
