package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/security"
	"giveaway-platform/users-service/internal/session"
	"giveaway-platform/users-service/internal/store"
	tokendomain "giveaway-platform/users-service/internal/token/domain"
	userdomain "giveaway-platform/users-service/internal/user/domain"
	userrepo "giveaway-platform/users-service/internal/user/repository"
)

// Sentinel errors for the auth service; handlers map them to gRPC codes.
var (
	ErrEmailAlreadyRegistered = errors.New("email already exists")
	ErrUserNotFound           = errors.New("user with such email not found")
	ErrInvalidCredentials     = errors.New("incorrect password")
	// ErrTokenNotFound covers both an unknown token and a replayed one, so a
	// caller cannot tell which of the two it hit.
	ErrTokenNotFound = errors.New("no email with this code found or the account was already confirmed")
)

// SignUpResult holds the outcome of SignUp.
type SignUpResult struct {
	GUID              string
	VerificationToken string
	ConfirmationLink  string
}

// SignInResult holds the outcome of SignIn. RefreshToken is always empty:
// sessions are cache-resident and revoked by deleting the entry, so there is
// nothing to refresh.
type SignInResult struct {
	Email        string
	AccessToken  string
	RefreshToken string
}

// SessionCache is the minimal session-cache surface needed by the auth service.
type SessionCache interface {
	SaveAuth(ctx context.Context, userGuid, token string, p session.Payload) error
}

// Mailer sends the verification email. Dispatch is best-effort; the auth
// service logs failures and never propagates them.
type Mailer interface {
	Send(ctx context.Context, targetEmail, subject, htmlBody string) error
}

// AuthService orchestrates sign-up, sign-in, and email-token verification.
type AuthService struct {
	store               store.Manager
	cache               SessionCache
	mailer              Mailer
	hasher              *security.Hasher
	confirmationBaseURL string
	sendEmails          bool
}

// NewAuthService returns an AuthService with the given dependencies.
// mailer may be nil; then no verification emails are dispatched.
// sendEmails gates dispatch so non-production environments stay quiet.
func NewAuthService(
	st store.Manager,
	cache SessionCache,
	mailer Mailer,
	hasher *security.Hasher,
	confirmationBaseURL string,
	sendEmails bool,
) *AuthService {
	return &AuthService{
		store:               st,
		cache:               cache,
		mailer:              mailer,
		hasher:              hasher,
		confirmationBaseURL: strings.TrimRight(confirmationBaseURL, "/"),
		sendEmails:          sendEmails,
	}
}

// SignUp creates an inactive user and its confirmation token in one
// transaction, then dispatches the verification email outside the transaction
// boundary. A duplicate email in any activation state fails with
// ErrEmailAlreadyRegistered.
func (s *AuthService) SignUp(ctx context.Context, email, password, fullName, phoneNumber string) (*SignUpResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	existing, err := s.store.Users(nil).GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}

	guid := uuid.New().String()
	verificationToken := uuid.New().String()
	confirmationLink := fmt.Sprintf("%s/?guid=%s&verificationToken=%s",
		s.confirmationBaseURL, guid, verificationToken)
	now := time.Now().UTC()

	user := &userdomain.User{
		GUID:         guid,
		Email:        email,
		PhoneNumber:  strings.TrimSpace(phoneNumber),
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hashed,
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	token := &tokendomain.ConfirmationToken{
		GUID:              guid,
		Email:             email,
		VerificationToken: verificationToken,
		IsActive:          true,
		CreatedAt:         now,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, h db.DBTX) error {
		if err := s.store.Users(h).Create(ctx, user); err != nil {
			return err
		}
		return s.store.Tokens(h).Create(ctx, token)
	})
	if err != nil {
		// A concurrent sign-up can slip past the lookup above and trip the
		// unique index instead.
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	// The user row is already committed; a failed email must not undo it.
	if s.sendEmails && s.mailer != nil {
		message := fmt.Sprintf(`<h1>This is your code: <a href=%s>Click here</a></h1>`, confirmationLink)
		if err := s.mailer.Send(ctx, email, "Verification code", message); err != nil {
			log.Printf("auth: verification email to %s failed: %v", email, err)
		}
	}

	return &SignUpResult{
		GUID:              guid,
		VerificationToken: verificationToken,
		ConfirmationLink:  confirmationLink,
	}, nil
}

// SignIn verifies credentials against the active, non-deleted user with the
// given email and materializes a new session in the cache. Multiple sessions
// per user may coexist; each sign-in mints a fresh token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.store.Users(nil).GetActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := security.GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	payload := session.Payload{UserGUID: user.GUID, Role: user.Role}
	if err := s.cache.SaveAuth(ctx, user.GUID, token, payload); err != nil {
		return nil, err
	}

	return &SignInResult{
		Email:        user.Email,
		AccessToken:  token,
		RefreshToken: "",
	}, nil
}

// VerifyEmailToken consumes the confirmation token and activates the user in
// one transaction. The transition is strictly one-time: replaying the same
// (guid, token) pair after a success fails with ErrTokenNotFound.
func (s *AuthService) VerifyEmailToken(ctx context.Context, guid, verificationToken string) error {
	token, err := s.store.Tokens(nil).GetActive(ctx, guid, verificationToken)
	if err != nil {
		return err
	}
	if token == nil {
		return ErrTokenNotFound
	}

	return s.store.WithTx(ctx, func(ctx context.Context, h db.DBTX) error {
		if err := s.store.Tokens(h).Deactivate(ctx, guid); err != nil {
			return err
		}
		return s.store.Users(h).Activate(ctx, guid)
	})
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("invalid email format")
	}
	return nil
}
