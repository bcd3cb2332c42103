// Package memory is an in-process implementation of the persistence layer,
// used for local development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
)

// Store holds users in maps guarded by a single RWMutex.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*entity.User
	byEmail map[string]int64
	now     func() time.Time
}

type snapshot struct {
	nextID  int64
	byID    map[int64]*entity.User
	byEmail map[string]int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[int64]*entity.User),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

// NewUserRepository returns a repository over s that locks per call.
func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{store: s}
}

// NewTransactionManager returns a TransactionManager over s.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

func (s *Store) snapshot() snapshot {
	byID := make(map[int64]*entity.User, len(s.byID))
	for id, u := range s.byID {
		byID[id] = u
	}
	byEmail := make(map[string]int64, len(s.byEmail))
	for email, id := range s.byEmail {
		byEmail[email] = id
	}

	return snapshot{nextID: s.nextID, byID: byID, byEmail: byEmail}
}

func (s *Store) restore(snap snapshot) {
	s.nextID = snap.nextID
	s.byID = snap.byID
	s.byEmail = snap.byEmail
}

func (s *Store) findByID(id int64) (*entity.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(u), nil
}

func (s *Store) findByEmail(email string) (*entity.User, error) {
	id, ok := s.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(s.byID[id]), nil
}

func (s *Store) list() []*entity.User {
	users := make([]*entity.User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, clone(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}

func (s *Store) create(user *entity.User) error {
	email := entity.NormalizeEmail(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	s.nextID++
	now := s.now()
	user.ID = s.nextID
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	s.byID[user.ID] = clone(user)
	s.byEmail[email] = user.ID

	return nil
}

func (s *Store) delete(id int64) error {
	u, ok := s.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	delete(s.byEmail, u.Email)
	delete(s.byID, id)

	return nil
}

func clone(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u

	return &c
}

// userRepository adapts Store to repository.UserRepository. Inside a
// transaction the manager already holds the write lock, so locked is true.
type userRepository struct {
	store  *Store
	locked bool
}

func (r *userRepository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()

	return r.store.mu.RUnlock
}

func (r *userRepository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.rlock()()

	return r.store.findByID(id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.rlock()()

	return r.store.findByEmail(email)
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.rlock()()

	return r.store.list(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.lock()()

	return r.store.create(user)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.lock()()

	return r.store.delete(id)
}

type repositoryFactory struct {
	repo *userRepository
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return f.repo
}

// transactionManager serialises transactions behind the store's write lock
// and restores a snapshot when fn fails or panics.
type transactionManager struct {
	store *Store
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{repo: &userRepository{store: tm.store, locked: true}}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
