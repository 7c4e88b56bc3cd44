package entity

import "sync"

// User owns a prepaid balance and an append-only order history. The balance
// can only move through TopUp, DeductBalance and Settle; it never goes
// negative. The mutex keeps settlement atomic on one instance; callers that
// reload the aggregate from a store must serialize through
// usecase.AccountLocks.
type User struct {
	mu       sync.Mutex
	username string
	password string
	balance  Money
	history  []*Order
}

// NewUser starts an account with a zero balance and empty history. The
// password is opaque to the domain; it is only ever compared for equality.
func NewUser(username, password string) *User {
	return &User{username: username, password: password}
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(username, password string, balance Money, history []*Order) *User {
	u := &User{username: username, password: password, balance: balance}
	u.history = append(u.history, history...)
	return u
}

func (u *User) Username() string { return u.username }

func (u *User) CheckPassword(input string) bool { return u.password == input }

// Password exposes the stored secret for persistence only.
func (u *User) Password() string { return u.password }

func (u *User) TopUp(amount Money) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.balance = u.balance.Add(amount)
}

// DeductBalance subtracts amount when the balance covers it and reports
// whether it did. On false the balance is untouched; there is no partial
// charge.
func (u *User) DeductBalance(amount Money) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.deductLocked(amount)
}

func (u *User) deductLocked(amount Money) bool {
	if !u.balance.GreaterOrEqual(amount) {
		return false
	}
	remaining, err := u.balance.Subtract(amount)
	if err != nil {
		return false
	}
	u.balance = remaining
	return true
}

// AddOrder appends to the history. Callers should only reach for this after a
// successful deduction for the order's total; Settle does both under one lock.
func (u *User) AddOrder(order *Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.history = append(u.history, order)
}

// Settle charges the account for the order's total and records the order.
// Deduction and history append happen inside a single critical section, so the
// charge is all-or-nothing: on rejection the balance and history are untouched
// and the order stays open. The computed total is returned either way so
// callers can report the shortfall.
func (u *User) Settle(order *Order) (Money, bool) {
	total := order.TotalPrice()
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.deductLocked(total) {
		return total, false
	}
	order.markSettled()
	u.history = append(u.history, order)
	return total, true
}

func (u *User) Balance() Money {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.balance
}

func (u *User) OrderHistory() []*Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*Order, len(u.history))
	copy(out, u.history)
	return out
}
