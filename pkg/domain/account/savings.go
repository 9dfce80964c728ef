package account

import "fmt"

// Savings account defaults; both can be revised per account after
// creation (the service layer applies configured values).
const (
	DefaultMinimumBalance = 100.0
	DefaultLowBalanceFee  = 5.0
)

// SavingsAccount accrues interest and reports a flat fee while the
// balance sits below the minimum. It never allows an overdraft.
type SavingsAccount struct {
	base
	interestRate   float64
	minimumBalance float64
	lowBalanceFee  float64
}

// NewSavings creates a savings account with a zero balance. The interest
// rate is on a 0-100 percentage scale.
func NewSavings(id, userID string, interestRate float64, passwordHash string) (*SavingsAccount, error) {
	if interestRate < 0 {
		return nil, fmt.Errorf("interest rate must not be negative, got %.2f", interestRate)
	}
	return &SavingsAccount{
		base:           newBase(id, userID, passwordHash),
		interestRate:   interestRate,
		minimumBalance: DefaultMinimumBalance,
		lowBalanceFee:  DefaultLowBalanceFee,
	}, nil
}

func (s *SavingsAccount) Kind() Kind { return KindSavings }

func (s *SavingsAccount) InterestRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interestRate
}

// SetInterestRate revises the interest rate (0-100 scale).
func (s *SavingsAccount) SetInterestRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interestRate = rate
}

func (s *SavingsAccount) MinimumBalance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minimumBalance
}

// SetMinimumBalance revises the low-balance threshold.
func (s *SavingsAccount) SetMinimumBalance(minimum float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minimumBalance = minimum
}

// SetLowBalanceFee revises the flat fee reported below the minimum.
func (s *SavingsAccount) SetLowBalanceFee(fee float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lowBalanceFee = fee
}

// Deposit increases the balance and records a DEPOSIT entry.
func (s *SavingsAccount) Deposit(amount float64, transactionID string) (*Transaction, error) {
	return s.deposit(amount, transactionID, "Deposit to account")
}

// Withdraw succeeds while balance - amount >= 0; savings accounts have no
// overdraft.
func (s *SavingsAccount) Withdraw(amount float64, transactionID string) (*Transaction, error) {
	return s.withdraw(amount, transactionID, "Withdrawal from account", 0)
}

// CalculateInterest returns balance * interestRate/100 without applying it.
func (s *SavingsAccount) CalculateInterest() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance * s.interestRate / 100
}

// ApplyInterest adds the computed interest to the balance and appends an
// INTEREST entry. When the computed interest is not positive the call is
// a defined no-op and returns a nil transaction.
func (s *SavingsAccount) ApplyInterest(transactionID string) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	interest := s.balance * s.interestRate / 100
	if interest <= 0 {
		return nil, nil
	}
	txn, err := NewTransaction(transactionID, s.id, interest, TypeInterest, "Interest applied to savings account")
	if err != nil {
		return nil, err
	}
	s.balance += interest
	s.ledger = append(s.ledger, txn)
	return txn, nil
}

// CalculateFees reports the flat low-balance fee while the balance is
// below the minimum. The fee is informational and never deducted.
func (s *SavingsAccount) CalculateFees() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balance < s.minimumBalance {
		return s.lowBalanceFee
	}
	return 0
}

// Summary renders the account for listings.
func (s *SavingsAccount) Summary() string {
	return fmt.Sprintf("Savings Account [ID: %s] - Balance: $%.2f, Interest Rate: %.2f%%, Minimum Balance: $%.2f, Fees: $%.2f",
		s.id, s.Balance(), s.InterestRate(), s.MinimumBalance(), s.CalculateFees())
}
