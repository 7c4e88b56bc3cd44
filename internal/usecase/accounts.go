package usecase

import (
	"context"
	"errors"

	"github.com/Radithya02/Catering-Food/internal/entity"
)

var (
	ErrDuplicateUsername    = errors.New("username already taken")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Accounts covers registration, login and the balance operations.
type Accounts struct {
	users UserRepo
	locks *AccountLocks
}

// NewAccounts wires the account workflows. Pass the same locks instance to
// every usecase that shares the store; nil allocates a private registry.
func NewAccounts(users UserRepo, locks *AccountLocks) *Accounts {
	if locks == nil {
		locks = NewAccountLocks()
	}
	return &Accounts{users: users, locks: locks}
}

func (a *Accounts) Register(ctx context.Context, username, password string) error {
	release := a.locks.Acquire(username)
	defer release()

	if _, err := a.users.FindByUsername(ctx, username); err == nil {
		return ErrDuplicateUsername
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	return a.users.Save(ctx, entity.NewUser(username, password))
}

// Login returns the account only on an exact username match with the right
// password. Both failure modes collapse into ErrAuthenticationFailed so the
// caller cannot probe for registered usernames.
func (a *Accounts) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := a.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, err
	}
	if !u.CheckPassword(password) {
		return nil, ErrAuthenticationFailed
	}
	return u, nil
}

// TopUp credits the balance unconditionally and returns the new balance.
// Load and save run under the account lock so a concurrent settlement or
// top-up cannot overwrite the credit.
func (a *Accounts) TopUp(ctx context.Context, username string, amount entity.Money) (entity.Money, error) {
	release := a.locks.Acquire(username)
	defer release()

	u, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return entity.Money{}, err
	}
	u.TopUp(amount)
	if err := a.users.Save(ctx, u); err != nil {
		return entity.Money{}, err
	}
	return u.Balance(), nil
}

func (a *Accounts) Balance(ctx context.Context, username string) (entity.Money, error) {
	u, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return entity.Money{}, err
	}
	return u.Balance(), nil
}

func (a *Accounts) History(ctx context.Context, username string) ([]*entity.Order, error) {
	u, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.OrderHistory(), nil
}
