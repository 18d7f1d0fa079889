package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"identity-service/internal/user"

	"github.com/google/uuid"
)

const MinPasswordLength = 6

// Service orchestrates the credential store, hasher, and token codec for the
// HTTP boundary.
type Service struct {
	store  user.Store
	tokens *TokenManager

	// dummyHash is verified against when a login email is unknown, so
	// response timing does not reveal whether the account exists.
	dummyHash string
}

func NewService(store user.Store, tokens *TokenManager) *Service {
	dummyHash, _ := HashPassword(uuid.NewString())

	return &Service{
		store:     store,
		tokens:    tokens,
		dummyHash: dummyHash,
	}
}

// Signup validates the request, hashes the password, and registers the user.
// The store's insert is atomic, so concurrent signups for one email cannot
// both succeed.
func (s *Service) Signup(
	ctx context.Context,
	name string,
	email string,
	password string,
) (*user.User, error) {

	name = strings.TrimSpace(name)
	key := user.NormalizeEmail(email)

	if name == "" || key == "" || password == "" {
		return nil, ErrMissingField
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        key,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Register(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(
	ctx context.Context,
	email string,
	password string,
) (*user.User, string, time.Time, error) {

	key := user.NormalizeEmail(email)
	if key == "" || password == "" {
		return nil, "", time.Time{}, ErrMissingField
	}

	u, err := s.store.Lookup(ctx, key)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("login: %w", err)
	}

	if u == nil {
		// Burn a verification anyway to keep timing consistent.
		_ = CheckPassword(s.dummyHash, password)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(u.Name, u.Email)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("login: issue token: %w", err)
	}

	return u, token, expiresAt, nil
}

// CurrentUser re-resolves the record behind a verified claim. The record may
// be gone even though the token is still valid.
func (s *Service) CurrentUser(
	ctx context.Context,
	claims *SessionClaims,
) (*user.User, error) {

	if claims == nil || claims.Email == "" {
		return nil, ErrUnauthorized
	}

	u, err := s.store.Lookup(ctx, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	return u, nil
}
