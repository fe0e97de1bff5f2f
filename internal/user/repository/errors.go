package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Duplicate-key sentinels raised when an insert or update trips one of the
// partial unique indexes on users. Callers translate them to their own
// duplicate errors.
var (
	ErrDuplicateEmail = errors.New("email already taken")
	ErrDuplicatePhone = errors.New("phone number already taken")
)

const uniqueViolationCode = "23505"

// mapConstraintError converts a Postgres unique violation on a known users
// index into the matching sentinel. Any other error passes through unchanged.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_phone_number_key":
		return ErrDuplicatePhone
	}
	return err
}
