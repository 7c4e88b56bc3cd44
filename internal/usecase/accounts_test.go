package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Radithya02/Catering-Food/internal/entity"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

func TestAccountsRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	accounts := usecase.NewAccounts(newMockUserRepo(), nil)

	require.NoError(t, accounts.Register(ctx, "alice", "pw1"))

	err := accounts.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, usecase.ErrDuplicateUsername)

	_, err = accounts.Login(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, usecase.ErrAuthenticationFailed)

	_, err = accounts.Login(ctx, "Alice", "pw1")
	assert.ErrorIs(t, err, usecase.ErrAuthenticationFailed, "username lookup is case-sensitive")

	u, err := accounts.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.True(t, u.Balance().IsZero())
}

func TestAccountsTopUpAndBalance(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	accounts := usecase.NewAccounts(repo, nil)
	require.NoError(t, accounts.Register(ctx, "alice", "pw1"))

	balance, err := accounts.TopUp(ctx, "alice", entity.MustMoney("5000"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(entity.MustMoney("5000")))

	balance, err = accounts.TopUp(ctx, "alice", entity.MustMoney("3000"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(entity.MustMoney("8000")))

	got, err := accounts.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.Equal(entity.MustMoney("8000")))

	_, err = accounts.TopUp(ctx, "ghost", entity.MustMoney("1000"))
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestAccountsConcurrentTopUp(t *testing.T) {
	ctx := context.Background()
	repo := newSnapshotUserRepo()
	accounts := usecase.NewAccounts(repo, nil)
	require.NoError(t, accounts.Register(ctx, "alice", "pw1"))

	// the store restores a fresh aggregate per load; without the account
	// lock, concurrent credits would overwrite each other
	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := accounts.TopUp(ctx, "alice", entity.MustMoney("1000"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := accounts.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(entity.MustMoney("8000")), "every credit persists")
}

func TestAccountsHistoryStartsEmpty(t *testing.T) {
	ctx := context.Background()
	accounts := usecase.NewAccounts(newMockUserRepo(), nil)
	require.NoError(t, accounts.Register(ctx, "alice", "pw1"))

	history, err := accounts.History(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, history)
}
