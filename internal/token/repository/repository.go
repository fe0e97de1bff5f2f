package repository

import (
	"context"

	"giveaway-platform/users-service/internal/token/domain"
)

// Repository defines persistence for email confirmation tokens.
type Repository interface {
	// Create persists the confirmation token.
	Create(ctx context.Context, t *domain.ConfirmationToken) error
	// GetActive returns the active token matching (guid, verificationToken),
	// or nil if none exists. Consumed tokens never match again.
	GetActive(ctx context.Context, guid, verificationToken string) (*domain.ConfirmationToken, error)
	// Deactivate flips is_active to false for the user's tokens. One-way; tokens are never reactivated.
	Deactivate(ctx context.Context, guid string) error
}
