package usecase_test

import (
	"context"
	"sync"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

var _ usecase.UserRepo = (*mockUserRepo)(nil)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	saves int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) Save(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Username()] = u
	m.saves++
	return nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, usecase.ErrUserNotFound
}

// snapshotUserRepo stores plain row values and restores a fresh aggregate on
// every find, the way a database-backed repo does. Save keeps the last
// writer's balance unconditionally.
type snapshotUserRepo struct {
	mu   sync.Mutex
	rows map[string]userRow
}

type userRow struct {
	password string
	balance  entity.Money
	history  []*entity.Order
}

var _ usecase.UserRepo = (*snapshotUserRepo)(nil)

func newSnapshotUserRepo() *snapshotUserRepo {
	return &snapshotUserRepo{rows: make(map[string]userRow)}
}

func (m *snapshotUserRepo) Save(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[u.Username()] = userRow{
		password: u.Password(),
		balance:  u.Balance(),
		history:  u.OrderHistory(),
	}
	return nil
}

func (m *snapshotUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[username]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return entity.RestoreUser(username, row.password, row.balance, row.history), nil
}

var _ usecase.FoodRepo = (*mockFoodRepo)(nil)

type mockFoodRepo struct {
	foods []entity.Food
}

func (m *mockFoodRepo) FindByID(_ context.Context, id string) (entity.Food, error) {
	for _, f := range m.foods {
		if f.ID == id {
			return f, nil
		}
	}
	return entity.Food{}, usecase.ErrItemNotFound
}

func (m *mockFoodRepo) FindAll(_ context.Context) ([]entity.Food, error) {
	return append([]entity.Food(nil), m.foods...), nil
}

var _ usecase.IdempotencyStore = (*mockIdemStore)(nil)

type mockIdemStore struct {
	locks    map[string]bool
	values   map[string]string
	released int
}

func newMockIdemStore() *mockIdemStore {
	return &mockIdemStore{locks: make(map[string]bool), values: make(map[string]string)}
}

func (m *mockIdemStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	k := scope + ":" + key
	if m.locks[k] {
		return false, nil
	}
	m.locks[k] = true
	return true, nil
}

func (m *mockIdemStore) Release(_ context.Context, scope, key string) error {
	delete(m.locks, scope+":"+key)
	m.released++
	return nil
}

func (m *mockIdemStore) Remember(_ context.Context, scope, key, value string) error {
	m.values[scope+":"+key] = value
	return nil
}

func (m *mockIdemStore) Recall(_ context.Context, scope, key string) (string, bool, error) {
	v, ok := m.values[scope+":"+key]
	return v, ok, nil
}

var _ usecase.OrderEvents = (*mockOrderEvents)(nil)

type mockOrderEvents struct {
	published []usecase.SettledMsg
}

func (m *mockOrderEvents) PublishSettled(_ context.Context, msg usecase.SettledMsg) error {
	m.published = append(m.published, msg)
	return nil
}
