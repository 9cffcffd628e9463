package newsroom

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bluupagebookings-collab/clean-governance-news-site-1/internal/db"
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}

// Register creates an admin user with a bcrypt password hash.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return nil, NewValidationError(CodeMissingRequiredField, "Email, name and password are required")
	}

	existing, err := m.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	}
	if existing != nil {
		return nil, NewConflictError(CodeDuplicateEmail, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    m.now(),
	}

	if err := m.db.InsertUser(ctx, user); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, NewConflictError(CodeDuplicateEmail, "Email already registered")
		}
		return nil, fmt.Errorf("db insert user: %w", err)
	}

	result := NewUser(user)
	return &result, nil
}

// Login verifies the credentials and issues an opaque session token with
// the configured TTL. Unknown email and wrong password are deliberately
// indistinguishable to the caller.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := m.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	}
	if user == nil {
		return nil, NewUnauthorizedError(CodeInvalidCredentials, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, NewUnauthorizedError(CodeInvalidCredentials, "Invalid email or password")
	}

	now := m.now()
	session := &db.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(m.sessionTTL),
		CreatedAt: now,
	}

	if err := m.db.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("db insert session: %w", err)
	}

	return &AuthSession{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      NewUser(user),
	}, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := m.db.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("db delete session: %w", err)
	}

	return nil
}

// UserByToken resolves an opaque bearer token into the authenticated user.
// Missing, unknown and expired tokens are all unauthorized; expired
// sessions are deleted lazily on first use.
func (m *Manager) UserByToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, NewUnauthorizedError(CodeUnauthorized, "Authentication required")
	}

	session, err := m.db.SessionByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("db get session by token: %w", err)
	}
	if session == nil {
		return nil, NewUnauthorizedError(CodeUnauthorized, "Authentication required")
	}

	if session.ExpiresAt.Before(m.now()) {
		_ = m.db.DeleteSession(ctx, token)
		return nil, NewUnauthorizedError(CodeUnauthorized, "Session expired")
	}

	if session.User == nil {
		return nil, NewUnauthorizedError(CodeUnauthorized, "Authentication required")
	}

	result := NewUser(session.User)
	return &result, nil
}
