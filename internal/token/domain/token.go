package domain

import "time"

// ConfirmationToken is a pending email verification. While IsActive is true,
// it is the single valid token for its user; consuming it flips IsActive to
// false permanently. Tokens are deactivated, never deleted.
type ConfirmationToken struct {
	GUID              string // owning user
	Email             string
	VerificationToken string
	IsActive          bool
	CreatedAt         time.Time
}
