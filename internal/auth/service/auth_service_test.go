package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"giveaway-platform/users-service/internal/db"
	"giveaway-platform/users-service/internal/security"
	"giveaway-platform/users-service/internal/session"
	tokendomain "giveaway-platform/users-service/internal/token/domain"
	tokenrepo "giveaway-platform/users-service/internal/token/repository"
	userdomain "giveaway-platform/users-service/internal/user/domain"
	userrepo "giveaway-platform/users-service/internal/user/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	byGUID map[string]*userdomain.User

	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byGUID: map[string]*userdomain.User{}}
}

func (r *memUserRepo) GetByGUID(ctx context.Context, guid string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byGUID[guid], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byGUID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetActiveByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byGUID {
		if u.Email == email && u.IsActive && !u.IsDeleted {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmailOrPhone(ctx context.Context, email, phone, excludeGUID string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byGUID {
		if excludeGUID != "" && u.GUID == excludeGUID {
			continue
		}
		if u.Email == email || u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Create(ctx context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	u2 := *u
	r.byGUID[u.GUID] = &u2
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, u *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u2 := *u
	r.byGUID[u.GUID] = &u2
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, guid string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byGUID[guid]; !ok {
		return 0, nil
	}
	delete(r.byGUID, guid)
	return 1, nil
}

func (r *memUserRepo) Activate(ctx context.Context, guid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byGUID[guid]; ok {
		u.IsActive = true
	}
	return nil
}

func (r *memUserRepo) List(ctx context.Context, p userrepo.ListParams) ([]*userdomain.User, error) {
	return nil, nil
}

func (r *memUserRepo) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byGUID)), nil
}

func (r *memUserRepo) ListByFavoriteCategory(ctx context.Context, categoryGUID string) ([]*userdomain.User, error) {
	return nil, nil
}

func (r *memUserRepo) UpdateFavoriteCategory(ctx context.Context, cat userdomain.FavoriteCategory) error {
	return nil
}

func (r *memUserRepo) RemoveFavoriteCategory(ctx context.Context, categoryGUID string) error {
	return nil
}

func (r *memUserRepo) TouchUpdatedAt(ctx context.Context, guids []string, at time.Time) (int64, error) {
	return int64(len(guids)), nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens []*tokendomain.ConfirmationToken
}

func (r *memTokenRepo) Create(ctx context.Context, t *tokendomain.ConfirmationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t2 := *t
	r.tokens = append(r.tokens, &t2)
	return nil
}

func (r *memTokenRepo) GetActive(ctx context.Context, guid, verificationToken string) (*tokendomain.ConfirmationToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.GUID == guid && t.VerificationToken == verificationToken && t.IsActive {
			return t, nil
		}
	}
	return nil, nil
}

func (r *memTokenRepo) Deactivate(ctx context.Context, guid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.GUID == guid {
			t.IsActive = false
		}
	}
	return nil
}

type memStore struct {
	users  *memUserRepo
	tokens *memTokenRepo
}

func newMemStore() *memStore {
	return &memStore{users: newMemUserRepo(), tokens: &memTokenRepo{}}
}

func (s *memStore) DB() db.DBTX { return nil }

func (s *memStore) Users(h db.DBTX) userrepo.Repository { return s.users }

func (s *memStore) Tokens(h db.DBTX) tokenrepo.Repository { return s.tokens }

func (s *memStore) WithTx(ctx context.Context, fn func(ctx context.Context, h db.DBTX) error) error {
	return fn(ctx, nil)
}

type memCache struct {
	mu    sync.Mutex
	saved map[string]session.Payload // token → payload
}

func newMemCache() *memCache {
	return &memCache{saved: map[string]session.Payload{}}
}

func (c *memCache) SaveAuth(ctx context.Context, userGuid, token string, p session.Payload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saved[token] = p
	return nil
}

type memMailer struct {
	mu       sync.Mutex
	to       []string
	subjects []string
	bodies   []string
	err      error
}

func (m *memMailer) Send(ctx context.Context, targetEmail, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, targetEmail)
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlBody)
	return nil
}

func newTestAuthService(st *memStore, cache *memCache, mailer *memMailer, sendEmails bool) *AuthService {
	var m Mailer
	if mailer != nil {
		m = mailer
	}
	return NewAuthService(st, cache, m, security.NewHasher(4), "https://allgiveaway.uz", sendEmails)
}

func TestSignUpCreatesUserAndToken(t *testing.T) {
	st := newMemStore()
	svc := newTestAuthService(st, newMemCache(), nil, false)

	res, err := svc.SignUp(context.Background(), "New.User@Example.com", "secret", "New User", "+998901234567")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if res.GUID == "" || res.VerificationToken == "" {
		t.Fatalf("expected guid and verification token, got %+v", res)
	}
	wantLink := "https://allgiveaway.uz/?guid=" + res.GUID + "&verificationToken=" + res.VerificationToken
	if res.ConfirmationLink != wantLink {
		t.Fatalf("confirmation link = %q, want %q", res.ConfirmationLink, wantLink)
	}

	u, err := st.users.GetByGUID(context.Background(), res.GUID)
	if err != nil || u == nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if u.Email != "new.user@example.com" {
		t.Errorf("email not lowercased: %q", u.Email)
	}
	if u.IsActive {
		t.Error("new user must be inactive until the email is verified")
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	tok, err := st.tokens.GetActive(context.Background(), res.GUID, res.VerificationToken)
	if err != nil || tok == nil {
		t.Fatalf("confirmation token not persisted: %v", err)
	}
	if tok.Email != "new.user@example.com" {
		t.Errorf("token email = %q", tok.Email)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	st := newMemStore()
	svc := newTestAuthService(st, newMemCache(), nil, false)

	if _, err := svc.SignUp(context.Background(), "dup@example.com", "secret", "First", "+998900000001"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	_, err := svc.SignUp(context.Background(), "dup@example.com", "other", "Second", "+998900000002")
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestSignUpDuplicateRace(t *testing.T) {
	st := newMemStore()
	svc := newTestAuthService(st, newMemCache(), nil, false)

	// A concurrent sign-up committing between the lookup and the insert
	// trips the unique index; the caller still sees the duplicate error.
	st.users.createErr = userrepo.ErrDuplicateEmail
	_, err := svc.SignUp(context.Background(), "race@example.com", "secret", "Racer", "+998900000001")
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestSignUpInvalidEmail(t *testing.T) {
	svc := newTestAuthService(newMemStore(), newMemCache(), nil, false)

	if _, err := svc.SignUp(context.Background(), "not-an-email", "secret", "X", "+998900000001"); err == nil {
		t.Fatal("expected error for malformed email")
	}
	if _, err := svc.SignUp(context.Background(), "", "secret", "X", "+998900000001"); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestSignUpEmailDispatch(t *testing.T) {
	t.Run("sends in production", func(t *testing.T) {
		mailer := &memMailer{}
		svc := newTestAuthService(newMemStore(), newMemCache(), mailer, true)

		res, err := svc.SignUp(context.Background(), "mail@example.com", "secret", "M", "+998900000003")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if len(mailer.to) != 1 || mailer.to[0] != "mail@example.com" {
			t.Fatalf("mail recipients = %v", mailer.to)
		}
		if mailer.subjects[0] != "Verification code" {
			t.Errorf("subject = %q", mailer.subjects[0])
		}
		if !strings.Contains(mailer.bodies[0], res.ConfirmationLink) {
			t.Errorf("body %q does not contain confirmation link", mailer.bodies[0])
		}
	})

	t.Run("quiet outside production", func(t *testing.T) {
		mailer := &memMailer{}
		svc := newTestAuthService(newMemStore(), newMemCache(), mailer, false)

		if _, err := svc.SignUp(context.Background(), "mail2@example.com", "secret", "M", "+998900000004"); err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if len(mailer.to) != 0 {
			t.Fatalf("expected no emails, got %v", mailer.to)
		}
	})

	t.Run("mailer failure does not fail sign-up", func(t *testing.T) {
		mailer := &memMailer{err: errors.New("mailjet down")}
		st := newMemStore()
		svc := newTestAuthService(st, newMemCache(), mailer, true)

		res, err := svc.SignUp(context.Background(), "mail3@example.com", "secret", "M", "+998900000005")
		if err != nil {
			t.Fatalf("SignUp: %v", err)
		}
		if u, _ := st.users.GetByGUID(context.Background(), res.GUID); u == nil {
			t.Fatal("user must be persisted even when the email fails")
		}
	})
}

func TestSignIn(t *testing.T) {
	st := newMemStore()
	cache := newMemCache()
	svc := newTestAuthService(st, cache, nil, false)

	res, err := svc.SignUp(context.Background(), "login@example.com", "secret", "L", "+998900000006")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := svc.VerifyEmailToken(context.Background(), res.GUID, res.VerificationToken); err != nil {
		t.Fatalf("VerifyEmailToken: %v", err)
	}

	signIn, err := svc.SignIn(context.Background(), "Login@Example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signIn.Email != "login@example.com" {
		t.Errorf("email = %q", signIn.Email)
	}
	if len(signIn.AccessToken) != 96 {
		t.Errorf("access token length = %d, want 96", len(signIn.AccessToken))
	}
	if signIn.RefreshToken != "" {
		t.Errorf("refresh token = %q, want empty", signIn.RefreshToken)
	}

	payload, ok := cache.saved[signIn.AccessToken]
	if !ok {
		t.Fatal("session not written to cache")
	}
	if payload.UserGUID != res.GUID {
		t.Errorf("cached user guid = %q, want %q", payload.UserGUID, res.GUID)
	}

	// A second sign-in mints a distinct token; both sessions coexist.
	again, err := svc.SignIn(context.Background(), "login@example.com", "secret")
	if err != nil {
		t.Fatalf("second SignIn: %v", err)
	}
	if again.AccessToken == signIn.AccessToken {
		t.Error("expected a fresh token per sign-in")
	}
	if len(cache.saved) != 2 {
		t.Errorf("cached sessions = %d, want 2", len(cache.saved))
	}
}

func TestSignInWrongPassword(t *testing.T) {
	st := newMemStore()
	cache := newMemCache()
	svc := newTestAuthService(st, cache, nil, false)

	res, err := svc.SignUp(context.Background(), "wrong@example.com", "secret", "W", "+998900000007")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := svc.VerifyEmailToken(context.Background(), res.GUID, res.VerificationToken); err != nil {
		t.Fatalf("VerifyEmailToken: %v", err)
	}

	_, err = svc.SignIn(context.Background(), "wrong@example.com", "nope")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if len(cache.saved) != 0 {
		t.Error("failed sign-in must not write a session")
	}
}

func TestSignInUnverifiedUser(t *testing.T) {
	st := newMemStore()
	svc := newTestAuthService(st, newMemCache(), nil, false)

	if _, err := svc.SignUp(context.Background(), "pending@example.com", "secret", "P", "+998900000008"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Not verified yet, so the active-user lookup misses.
	_, err := svc.SignIn(context.Background(), "pending@example.com", "secret")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestVerifyEmailTokenOneTime(t *testing.T) {
	st := newMemStore()
	svc := newTestAuthService(st, newMemCache(), nil, false)

	res, err := svc.SignUp(context.Background(), "verify@example.com", "secret", "V", "+998900000009")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := svc.VerifyEmailToken(context.Background(), res.GUID, res.VerificationToken); err != nil {
		t.Fatalf("VerifyEmailToken: %v", err)
	}
	u, _ := st.users.GetByGUID(context.Background(), res.GUID)
	if u == nil || !u.IsActive {
		t.Fatal("user must be active after verification")
	}

	err = svc.VerifyEmailToken(context.Background(), res.GUID, res.VerificationToken)
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("replay err = %v, want ErrTokenNotFound", err)
	}
}

func TestVerifyEmailTokenUnknown(t *testing.T) {
	svc := newTestAuthService(newMemStore(), newMemCache(), nil, false)

	err := svc.VerifyEmailToken(context.Background(), "no-such-guid", "no-such-token")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("err = %v, want ErrTokenNotFound", err)
	}
}
