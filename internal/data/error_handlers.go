package data

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tuitionhub/internal/errdefs"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func handleError(err error) error {
	if isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	// a dangling foreign key means the referenced row is gone
	if isForeignKeyViolation(err) {
		return errdefs.ErrNotFound
	}
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	return fmt.Errorf("repository error: %w", err)
}
