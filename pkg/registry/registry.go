// Package registry provides the process-lifetime stores for accounts,
// investments and users. One Registry is constructed per process and
// passed to the services that need it; there is no global state. Each
// store is a mutex-guarded map plus an insertion-order index, so listings
// are deterministic.
package registry

import (
	"sync"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/investment"
	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/user"
)

// Registry bundles the three stores.
type Registry struct {
	Accounts    *Accounts
	Investments *Investments
	Users       *Users
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		Accounts:    &Accounts{byID: make(map[string]account.Account)},
		Investments: &Investments{byID: make(map[string]investment.Investment)},
		Users:       &Users{byID: make(map[string]*user.User), byUsername: make(map[string]*user.User)},
	}
}

// Accounts stores accounts by id.
type Accounts struct {
	mu    sync.RWMutex
	byID  map[string]account.Account
	order []string
}

// Put registers an account. Accounts are never removed.
func (s *Accounts) Put(acc account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[acc.ID()]; !exists {
		s.order = append(s.order, acc.ID())
	}
	s.byID[acc.ID()] = acc
}

// Get returns the account or ErrAccountNotFound.
func (s *Accounts) Get(id string) (account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	return acc, nil
}

// ListByUser returns the user's accounts in creation order.
func (s *Accounts) ListByUser(userID string) []account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var accs []account.Account
	for _, id := range s.order {
		if acc := s.byID[id]; acc.UserID() == userID {
			accs = append(accs, acc)
		}
	}
	return accs
}

// Count returns the number of registered accounts.
func (s *Accounts) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Investments indexes investments globally by id for lookup; economically
// each investment belongs to exactly one account, which holds its own
// reference list.
type Investments struct {
	mu    sync.RWMutex
	byID  map[string]investment.Investment
	order []string
}

// Put registers an investment.
func (s *Investments) Put(inv investment.Investment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[inv.ID()]; !exists {
		s.order = append(s.order, inv.ID())
	}
	s.byID[inv.ID()] = inv
}

// Get returns the investment or investment.ErrNotFound.
func (s *Investments) Get(id string) (investment.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.byID[id]
	if !ok {
		return nil, investment.ErrNotFound
	}
	return inv, nil
}

// ListByUser returns the user's investments in creation order.
func (s *Investments) ListByUser(userID string) []investment.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var invs []investment.Investment
	for _, id := range s.order {
		if inv := s.byID[id]; inv.UserID() == userID {
			invs = append(invs, inv)
		}
	}
	return invs
}

// Count returns the number of registered investments.
func (s *Investments) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Users stores users by id and by unique username.
type Users struct {
	mu         sync.RWMutex
	byID       map[string]*user.User
	byUsername map[string]*user.User
}

// Put registers a user; the username must be unused.
func (s *Users) Put(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[u.Username]; taken {
		return user.ErrUsernameTaken
	}
	s.byID[u.ID] = u
	s.byUsername[u.Username] = u
	return nil
}

// Get returns the user by id or user.ErrUserNotFound.
func (s *Users) Get(id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

// GetByUsername returns the user by username or user.ErrUserNotFound.
func (s *Users) GetByUsername(username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
