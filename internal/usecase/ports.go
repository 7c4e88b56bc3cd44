package usecase

import (
	"context"
	"errors"

	"github.com/Radithya02/Catering-Food/internal/entity"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")
)

// UserRepo is the account store, keyed by exact username. Save persists the
// whole aggregate: balance and any history orders not yet stored.
type UserRepo interface {
	Save(ctx context.Context, u *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// FoodRepo is the read side of the catalog.
type FoodRepo interface {
	FindByID(ctx context.Context, id string) (entity.Food, error)
	FindAll(ctx context.Context) ([]entity.Food, error)
}

// CatalogCache fronts FoodRepo lookups; a miss is (zero, false, nil).
type CatalogCache interface {
	GetFood(ctx context.Context, id string) (entity.Food, bool, error)
	SetFood(ctx context.Context, f entity.Food) error
	Invalidate(ctx context.Context, id string) error
}

// IdempotencyStore guards replayed requests. Release frees a key whose
// attempt failed so the caller may retry it before the TTL runs out.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

// OrderEvents publishes settled orders for downstream fulfilment.
type OrderEvents interface {
	PublishSettled(ctx context.Context, msg SettledMsg) error
}
