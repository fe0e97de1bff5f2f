package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/token/domain"
)

// PostgresRepository persists confirmation tokens over a DBTX handle.
type PostgresRepository struct {
	h db.DBTX
}

// New returns a confirmation-token repository bound to the given handle.
func New(h db.DBTX) *PostgresRepository {
	return &PostgresRepository{h: h}
}

func (r *PostgresRepository) Create(ctx context.Context, t *domain.ConfirmationToken) error {
	query := `INSERT INTO user_confirmation_tokens
		(guid, email, verification_token, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.h.ExecContext(ctx, query,
		t.GUID, t.Email, t.VerificationToken, t.IsActive, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetActive(ctx context.Context, guid, verificationToken string) (*domain.ConfirmationToken, error) {
	query := `SELECT guid, email, verification_token, is_active, created_at
		FROM user_confirmation_tokens
		WHERE guid = $1 AND verification_token = $2 AND is_active`

	t := &domain.ConfirmationToken{}
	err := r.h.QueryRowContext(ctx, query, guid, verificationToken).
		Scan(&t.GUID, &t.Email, &t.VerificationToken, &t.IsActive, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Deactivate(ctx context.Context, guid string) error {
	query := `UPDATE user_confirmation_tokens SET is_active = FALSE WHERE guid = $1`
	_, err := r.h.ExecContext(ctx, query, guid)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
