package memory

import (
	"context"
	"sync"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(name, email string) *entity.User {
	return &entity.User{Name: name, Email: email, PasswordHash: "$2a$04$hash"}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	alice := newUser("Alice", "  Alice@Example.COM ")
	require.NoError(t, repo.Create(ctx, alice))
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, "alice@example.com", alice.Email)
	assert.False(t, alice.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice, byID)

	byEmail, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	// Returned values are copies.
	byID.Name = "Mallory"
	again, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 42), repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.Create(ctx, newUser("Alice", "alice@example.com")))

	err := repo.Create(ctx, newUser("Imposter", "ALICE@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestUserRepository_ListOrderedAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		require.NoError(t, repo.Create(ctx, newUser("n", email)))
	}
	require.NoError(t, repo.Delete(ctx, 2))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(3), users[1].ID)

	// The freed email can be registered again and gets a fresh ID.
	again := newUser("b", "b@x.com")
	require.NoError(t, repo.Create(ctx, again))
	assert.Equal(t, int64(4), again.ID)
}

func TestUserRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewUserRepository(NewStore())
	_, err := repo.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Create(ctx, newUser("a", "a@x.com")), context.Canceled)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewUserRepository(store)
	tm := NewTransactionManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, newUser("Alice", "alice@example.com"))
	})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, newUser("Bob", "bob@example.com")); err != nil {
			return err
		}

		return f.UserRepo().Create(ctx, newUser("Dup", "alice@example.com"))
	})
	require.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)

	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, newUser("Alice", "alice@example.com"))
			panic("boom")
		})
	})

	users, err := NewUserRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewUserRepository(store)
	tm := NewTransactionManager(store)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results <- repo.Create(ctx, newUser("same", "same@example.com"))

				return
			}
			results <- tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return f.UserRepo().Create(ctx, newUser("same", "same@example.com"))
			})
		}(i)
	}
	wg.Wait()
	close(results)

	var ok int
	for err := range results {
		if err == nil {
			ok++
		} else {
			assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
		}
	}
	assert.Equal(t, 1, ok)
}
