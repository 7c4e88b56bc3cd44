package repo

import (
	"context"
	"sync"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

// MemoryUserRepo keeps accounts in a process-local map keyed by username. It
// backs DSN-less dev runs and tests.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]*entity.User)}
}

func (r *MemoryUserRepo) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Username()] = u
	return nil
}

func (r *MemoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, usecase.ErrUserNotFound
}

var _ usecase.UserRepo = (*MemoryUserRepo)(nil)

// MemoryFoodRepo is the static menu, seeded at startup and kept in insertion
// order. SetPrice serves the Kafka price feed.
type MemoryFoodRepo struct {
	mu    sync.RWMutex
	byID  map[string]entity.Food
	order []string
}

func NewMemoryFoodRepo(foods []entity.Food) *MemoryFoodRepo {
	r := &MemoryFoodRepo{byID: make(map[string]entity.Food)}
	for _, f := range foods {
		if _, ok := r.byID[f.ID]; !ok {
			r.order = append(r.order, f.ID)
		}
		r.byID[f.ID] = f
	}
	return r
}

func (r *MemoryFoodRepo) FindByID(_ context.Context, id string) (entity.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.byID[id]; ok {
		return f, nil
	}
	return entity.Food{}, usecase.ErrItemNotFound
}

func (r *MemoryFoodRepo) FindAll(_ context.Context) ([]entity.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Food, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryFoodRepo) SetPrice(_ context.Context, id string, price entity.Money) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return usecase.ErrItemNotFound
	}
	f.Price = price
	r.byID[id] = f
	return nil
}

var _ usecase.FoodRepo = (*MemoryFoodRepo)(nil)
