package usecase

import "sync"

// AccountLocks hands out one mutex per username. Workflows that load, mutate
// and save the same account must hold its lock for the whole sequence:
// database-backed stores restore a fresh aggregate on every find, so the
// aggregate's own mutex cannot order two loads against each other.
//
// Every usecase sharing a UserRepo must share one AccountLocks.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAccountLocks() *AccountLocks {
	return &AccountLocks{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the account's lock is held and returns its release.
// Entries are never evicted; the registry is bounded by the set of usernames.
func (l *AccountLocks) Acquire(username string) func() {
	l.mu.Lock()
	m, ok := l.locks[username]
	if !ok {
		m = &sync.Mutex{}
		l.locks[username] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
