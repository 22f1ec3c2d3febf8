package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comisarias/novedades-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = strconv.Itoa(r.nextID)
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// stubThrottle counts failures in memory; locked mirrors a Redis lockout.
type stubThrottle struct {
	failures map[string]int
	max      int
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: max}
}

func (t *stubThrottle) Allowed(_ context.Context, username string) (bool, error) {
	return t.failures[username] < t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Clear(_ context.Context, username string) error {
	delete(t.failures, username)
	return nil
}

func newTestAuthService(repo *stubUserRepo, throttle LoginThrottle) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, throttle, nil, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	user, err := svc.Register(context.Background(), "alice", "pass123", domain.RoleOficial20)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleOficial20 {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	user, err := svc.Register(context.Background(), "bob", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	if _, err := svc.Register(context.Background(), "", "pass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass", "SUPERVISOR"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	if _, err := svc.Register(context.Background(), "bob", "pass", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	before := repo.users["bob"].PasswordHash

	if _, err := svc.Register(context.Background(), "bob", "pass2", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.users["bob"].PasswordHash != before {
		t.Fatalf("duplicate register mutated the stored credential")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	if _, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleOficiales); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The issued token must verify and carry the stored role.
	claim, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claim.Role != domain.RoleOficiales {
		t.Fatalf("expected role %s, got %s", domain.RoleOficiales, claim.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	// Unknown user must surface the same generic error as a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Lockout(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(2)
	svc := newTestAuthService(repo, throttle)

	_, _ = svc.Register(context.Background(), "eve", "goodpass", "")

	for i := 0; i < 2; i++ {
		if _, _, err := svc.Login(context.Background(), "eve", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Even the correct password is rejected while locked out.
	if _, _, err := svc.Login(context.Background(), "eve", "goodpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, newStubThrottle(5))

	user, err := svc.Register(context.Background(), "frank", "pass123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
