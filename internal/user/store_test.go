package user

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *User {
	return &User{
		ID:           "id-" + email,
		Name:         "Test",
		Email:        NormalizeEmail(email),
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now(),
	}
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	require.Equal(t, "", NormalizeEmail("   "))
}

func TestRegisterAndLookup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	u := newTestUser("ada@example.com")
	require.NoError(t, store.Register(ctx, u))

	got, err := store.Lookup(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestLookupNormalizesKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Register(ctx, newTestUser("ada@example.com")))

	got, err := store.Lookup(ctx, "  Ada@Example.Com ")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "ada@example.com", got.Email)
}

func TestLookupAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Lookup(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Register(ctx, newTestUser("ada@example.com")))

	err := store.Register(ctx, newTestUser("ada@example.com"))
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterDuplicateDifferentCase(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Register(ctx, newTestUser("ada@example.com")))

	dup := newTestUser("ada@example.com")
	dup.Email = "Ada@Example.com"
	err := store.Register(ctx, dup)
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Register(ctx, newTestUser("race@example.com"))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, ErrDuplicateEmail)
			lost++
		}
	}

	require.Equal(t, 1, won)
	require.Equal(t, attempts-1, lost)
}
