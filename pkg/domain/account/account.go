// Package account models the banking core: the Account capability with its
// Checking and Savings variants, and the append-only transaction ledger
// each account keeps.
//
// Invariants:
//   - The balance always equals the signed sum of the ledger entries.
//   - A checking balance never goes below -overdraftLimit; a savings
//     balance never goes below 0.
//   - Ledger entries are immutable and kept in operation order.
//
// The variant set is closed: the shared state lives in an unexported base
// struct that nothing outside this package can embed. Every mutation is
// guarded by a per-account mutex, giving at-most-one-writer discipline if
// the package is ever driven concurrently.
package account

import (
	"sync"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/investment"
)

// Kind discriminates the closed set of account variants.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
)

// Account is the capability shared by CheckingAccount and SavingsAccount.
type Account interface {
	ID() string
	UserID() string
	Kind() Kind
	Balance() float64
	PasswordHash() string

	// Deposit increases the balance and appends a DEPOSIT entry. The
	// amount must be positive.
	Deposit(amount float64, transactionID string) (*Transaction, error)
	// Withdraw decreases the balance and appends a WITHDRAWAL entry,
	// failing with ErrInsufficientFunds when the variant's floor would
	// be breached. The balance is untouched on failure.
	Withdraw(amount float64, transactionID string) (*Transaction, error)
	// CalculateFees is a pure query; fees are reported, never deducted.
	CalculateFees() float64
	// Summary renders the account for listings.
	Summary() string
	// TransactionHistory returns a copy of the ledger, oldest first.
	TransactionHistory() []*Transaction

	// Investments returns the account's holdings in attachment order.
	Investments() []investment.Investment
	// AddInvestment links a holding to this account.
	AddInvestment(inv investment.Investment)
}

// base carries the state shared by both variants.
type base struct {
	id           string
	userID       string
	passwordHash string

	mu          sync.Mutex
	balance     float64
	ledger      []*Transaction
	investments []investment.Investment
}

func newBase(id, userID, passwordHash string) base {
	return base{id: id, userID: userID, passwordHash: passwordHash}
}

func (b *base) ID() string           { return b.id }
func (b *base) UserID() string       { return b.userID }
func (b *base) PasswordHash() string { return b.passwordHash }

func (b *base) Balance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance
}

func (b *base) TransactionHistory() []*Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	history := make([]*Transaction, len(b.ledger))
	copy(history, b.ledger)
	return history
}

func (b *base) Investments() []investment.Investment {
	b.mu.Lock()
	defer b.mu.Unlock()
	invs := make([]investment.Investment, len(b.investments))
	copy(invs, b.investments)
	return invs
}

func (b *base) AddInvestment(inv investment.Investment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.investments = append(b.investments, inv)
}

// deposit applies the shared deposit rule; both variants use it as-is.
func (b *base) deposit(amount float64, transactionID, description string) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrAmountMustBePositive
	}
	txn, err := NewTransaction(transactionID, b.id, amount, TypeDeposit, description)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balance += amount
	b.ledger = append(b.ledger, txn)
	return txn, nil
}

// withdraw applies the shared withdrawal rule against the variant's floor:
// 0 for savings, -overdraftLimit for checking.
func (b *base) withdraw(amount float64, transactionID, description string, floor float64) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrAmountMustBePositive
	}
	txn, err := NewTransaction(transactionID, b.id, amount, TypeWithdrawal, description)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.balance-amount < floor {
		return nil, ErrInsufficientFunds
	}
	b.balance -= amount
	b.ledger = append(b.ledger, txn)
	return txn, nil
}
