package user

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"livpulse/internal/database"

	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// FindDuplicate returns a user sharing the username or email,
	// excluding excludeID. Returns ErrUserNotFound when there is none.
	FindDuplicate(ctx context.Context, username, email, excludeID string) (User, error)
	Insert(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}

// NewUserRepository picks the backing store: MongoDB when the database
// handle is connected, the seeded in-memory store otherwise. Both start
// with the demo accounts.
func NewUserRepository(db *database.MongodbDB, log *zap.Logger) (UserRepository, error) {
	if db.Enabled() {
		log.Info("user repository using mongodb backend")
		repo := NewMongoUserRepository(db)
		if err := repo.EnsureSeeds(context.Background(), seedUsers()); err != nil {
			return nil, err
		}
		return repo, nil
	}
	return NewMemoryUserRepository(seedUsers()), nil
}

// MemoryUserRepository keeps accounts in process memory.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryUserRepository(seed []User) *MemoryUserRepository {
	return &MemoryUserRepository{users: seed}
}

func (r *MemoryUserRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]User(nil), r.users...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *MemoryUserRepository) FindDuplicate(_ context.Context, username, email, excludeID string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if (username != "" && strings.EqualFold(u.Username, username)) ||
			(email != "" && strings.EqualFold(u.Email, email)) {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *MemoryUserRepository) Insert(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = u
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
