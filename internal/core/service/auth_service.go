package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

// LoginThrottle limits repeated failed login attempts per username.
type LoginThrottle interface {
	// Allowed reports whether the username may attempt a login.
	Allowed(ctx context.Context, username string) (bool, error)
	// RecordFailure counts a failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Clear resets the failure count after a successful login.
	Clear(ctx context.Context, username string) error
}

// AuthService implements registration, login, and user administration.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	throttle LoginThrottle
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, throttle LoginThrottle, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, log: log}
}

// Register creates a new credential. The role defaults to "user" when empty
// and must be one of the enumerated roles otherwise.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	s.record("register", created.Username, true)
	return created, nil
}

// Login verifies the credential and issues a session token. Lookup failures
// and hash mismatches both surface as ErrInvalidCredentials so the response
// does not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	allowed, err := s.throttle.Allowed(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		s.log.Warn().Str("username", username).Msg("login locked out")
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.log.Debug().Str("username", username).Msg("login for unknown user")
		s.failure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("username", username).Msg("login with wrong password")
		s.failure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.throttle.Clear(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to clear login throttle")
	}
	s.record("login", username, true)
	return token, user, nil
}

// ListUsers returns every stored credential. Password hashes are stripped at
// the JSON layer, not here, so admins tooling can still compare records.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// DeleteUser removes a credential by id.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record("delete_user", id, true)
	return nil
}

func (s *AuthService) failure(ctx context.Context, username string) {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
	s.record("login", username, false)
}

func (s *AuthService) record(action, target string, success bool) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEntry{
		Actor:     target,
		Action:    action,
		Target:    target,
		Success:   success,
		Timestamp: time.Now().UTC(),
	})
}
