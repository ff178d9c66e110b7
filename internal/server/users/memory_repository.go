package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kashifkhan1545/fingerauth/internal/common"
)

// MemoryRepository is an in-memory user store keyed by email. The
// development server holds only its seed accounts, so nothing heavier is
// needed.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, fmt.Errorf("user %s: %w", user.Email, common.ErrorAlreadyExists)
	}

	saved := *user
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	saved.CreatedAt = time.Now()

	r.users[saved.Email] = &saved
	return &saved, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrorNotFound)
	}

	u := *user
	return &u, nil
}
