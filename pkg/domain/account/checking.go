package account

import "fmt"

// CheckingAccount allows withdrawals into an overdraft up to a fixed
// limit. The limit is set at creation and never changes.
type CheckingAccount struct {
	base
	overdraftLimit float64
}

// NewChecking creates a checking account with a zero balance. The
// overdraft limit must not be negative.
func NewChecking(id, userID string, overdraftLimit float64, passwordHash string) (*CheckingAccount, error) {
	if overdraftLimit < 0 {
		return nil, ErrInvalidOverdraftLimit
	}
	return &CheckingAccount{
		base:           newBase(id, userID, passwordHash),
		overdraftLimit: overdraftLimit,
	}, nil
}

func (c *CheckingAccount) Kind() Kind              { return KindChecking }
func (c *CheckingAccount) OverdraftLimit() float64 { return c.overdraftLimit }

// Deposit increases the balance and records a DEPOSIT entry.
func (c *CheckingAccount) Deposit(amount float64, transactionID string) (*Transaction, error) {
	return c.deposit(amount, transactionID, "Deposit to account")
}

// Withdraw succeeds while balance - amount >= -overdraftLimit.
func (c *CheckingAccount) Withdraw(amount float64, transactionID string) (*Transaction, error) {
	return c.withdraw(amount, transactionID, "Withdrawal from account", -c.overdraftLimit)
}

// CalculateFees always returns 0; no fee policy exists for checking
// accounts.
func (c *CheckingAccount) CalculateFees() float64 { return 0 }

// Summary renders the account for listings.
func (c *CheckingAccount) Summary() string {
	return fmt.Sprintf("Checking Account [ID: %s] - Balance: $%.2f, Overdraft Limit: $%.2f, Fees: $%.2f",
		c.id, c.Balance(), c.overdraftLimit, c.CalculateFees())
}
