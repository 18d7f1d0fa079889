package user

import (
	"context"
	"errors"
	"sync"
)

var ErrDuplicateEmail = errors.New("email already registered")

// Store holds user records keyed by normalized email.
type Store interface {
	// Register inserts a new record. It fails with ErrDuplicateEmail if the
	// normalized email already has one.
	Register(ctx context.Context, u *User) error

	// Lookup returns the record for the normalized email, or nil if absent.
	Lookup(ctx context.Context, email string) (*User, error)
}

// MemoryStore keeps records in process memory. Data is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*User),
	}
}

// Register holds the write lock across the presence check and the insert, so
// of two concurrent signups for the same email exactly one succeeds.
func (s *MemoryStore) Register(ctx context.Context, u *User) error {
	key := NormalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return ErrDuplicateEmail
	}

	s.users[key] = u
	return nil
}

func (s *MemoryStore) Lookup(ctx context.Context, email string) (*User, error) {
	key := NormalizeEmail(email)

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[key]
	if !exists {
		return nil, nil
	}

	return u, nil
}
