package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapConstraintError(t *testing.T) {
	emailErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"}
	if got := mapConstraintError(emailErr); !errors.Is(got, ErrDuplicateEmail) {
		t.Errorf("email violation mapped to %v, want ErrDuplicateEmail", got)
	}

	phoneErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_phone_number_key"}
	if got := mapConstraintError(phoneErr); !errors.Is(got, ErrDuplicatePhone) {
		t.Errorf("phone violation mapped to %v, want ErrDuplicatePhone", got)
	}

	// Violations of unknown constraints and non-unique errors pass through.
	otherConstraint := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_pkey"}
	if got := mapConstraintError(otherConstraint); got != otherConstraint {
		t.Errorf("unknown constraint mapped to %v, want passthrough", got)
	}
	notNull := &pgconn.PgError{Code: "23502", ConstraintName: "users_email_key"}
	if got := mapConstraintError(notNull); got != notNull {
		t.Errorf("non-unique code mapped to %v, want passthrough", got)
	}
	plain := errors.New("connection reset")
	if got := mapConstraintError(plain); got != plain {
		t.Errorf("plain error mapped to %v, want passthrough", got)
	}
}

func TestMapConstraintErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: "users_email_key",
	})
	if got := mapConstraintError(wrapped); !errors.Is(got, ErrDuplicateEmail) {
		t.Errorf("wrapped violation mapped to %v, want ErrDuplicateEmail", got)
	}
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		page, limit int32
		want        int64
	}{
		{0, 20, 0},
		{-3, 20, 0},
		{1, 20, 0},
		{2, 20, 20},
		{5, 50, 200},
		// Extreme pages must not overflow into a negative offset.
		{2147483647, 2147483647, (int64(2147483647) - 1) * int64(2147483647)},
	}
	for _, tc := range cases {
		got := pageOffset(tc.page, tc.limit)
		if got != tc.want {
			t.Errorf("pageOffset(%d, %d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
		if got < 0 {
			t.Errorf("pageOffset(%d, %d) is negative", tc.page, tc.limit)
		}
	}
}
