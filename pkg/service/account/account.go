// Package account provides the account use-cases consumed by the
// interactive shell: opening accounts, moving money, applying interest
// and the read-side queries.
package account

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/antoniopaulocuyo/MCASH2/pkg/config"
	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	"github.com/go-playground/validator/v10"
)

// Notifier receives every completed transaction; the notification service
// implements it. A nil notifier disables dispatch.
type Notifier interface {
	NotifyTransaction(txn *account.Transaction)
}

// Service implements the account use-cases.
type Service struct {
	accounts *registry.Accounts
	ids      *idgen.Generator
	notifier Notifier
	savings  *config.Savings
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a Service. savings may be nil, in which case the domain
// defaults apply to new savings accounts.
func New(
	accounts *registry.Accounts,
	ids *idgen.Generator,
	notifier Notifier,
	savings *config.Savings,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts: accounts,
		ids:      ids,
		notifier: notifier,
		savings:  savings,
		validate: validator.New(),
		logger:   logger,
	}
}

// OpenParams describes a new account. OverdraftLimit applies to checking
// accounts, InterestRate to savings.
type OpenParams struct {
	Kind           account.Kind `validate:"required,oneof=checking savings"`
	UserID         string       `validate:"required"`
	PasswordHash   string       `validate:"required"`
	OverdraftLimit float64      `validate:"gte=0"`
	InterestRate   float64      `validate:"gte=0,lte=100"`
}

// Open creates and registers an account of the requested kind.
func (s *Service) Open(p OpenParams) (account.Account, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid account parameters: %w", err)
	}

	id := s.ids.AccountID()
	var (
		acc account.Account
		err error
	)
	switch p.Kind {
	case account.KindChecking:
		acc, err = account.NewChecking(id, p.UserID, p.OverdraftLimit, p.PasswordHash)
	case account.KindSavings:
		var sav *account.SavingsAccount
		sav, err = account.NewSavings(id, p.UserID, p.InterestRate, p.PasswordHash)
		if err == nil && s.savings != nil {
			sav.SetMinimumBalance(s.savings.MinimumBalance)
			sav.SetLowBalanceFee(s.savings.LowBalanceFee)
		}
		acc = sav
	}
	if err != nil {
		s.logger.Error("account creation failed", "kind", p.Kind, "user_id", p.UserID, "error", err)
		return nil, err
	}

	s.accounts.Put(acc)
	s.logger.Info("account opened", "account_id", acc.ID(), "kind", p.Kind, "user_id", p.UserID)
	return acc, nil
}

// Deposit credits the account and forwards the transaction to the
// notifier.
func (s *Service) Deposit(accountID string, amount float64) (*account.Transaction, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}
	txn, err := acc.Deposit(amount, s.ids.TransactionID())
	if err != nil {
		s.logger.Error("deposit failed", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}
	s.logger.Info("deposit completed",
		"account_id", accountID, "transaction_id", txn.ID(), "amount", amount, "balance", acc.Balance())
	if s.notifier != nil {
		s.notifier.NotifyTransaction(txn)
	}
	return txn, nil
}

// Withdraw debits the account and forwards the transaction to the
// notifier. ErrInsufficientFunds leaves the balance untouched.
func (s *Service) Withdraw(accountID string, amount float64) (*account.Transaction, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}
	txn, err := acc.Withdraw(amount, s.ids.TransactionID())
	if err != nil {
		s.logger.Error("withdrawal failed", "account_id", accountID, "amount", amount, "error", err)
		return nil, err
	}
	s.logger.Info("withdrawal completed",
		"account_id", accountID, "transaction_id", txn.ID(), "amount", amount, "balance", acc.Balance())
	if s.notifier != nil {
		s.notifier.NotifyTransaction(txn)
	}
	return txn, nil
}

// ApplyInterest applies the savings interest rule. A checking account id
// yields account.ErrNotSavings. A nil transaction with a nil error means
// the computed interest was zero.
func (s *Service) ApplyInterest(accountID string) (*account.Transaction, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}
	sav, ok := acc.(*account.SavingsAccount)
	if !ok {
		return nil, account.ErrNotSavings
	}
	txn, err := sav.ApplyInterest(s.ids.TransactionID())
	if err != nil {
		return nil, err
	}
	if txn == nil {
		s.logger.Info("no interest to apply", "account_id", accountID)
		return nil, nil
	}
	s.logger.Info("interest applied",
		"account_id", accountID, "transaction_id", txn.ID(), "amount", txn.Amount(), "balance", sav.Balance())
	if s.notifier != nil {
		s.notifier.NotifyTransaction(txn)
	}
	return txn, nil
}

// Get returns the account by id.
func (s *Service) Get(accountID string) (account.Account, error) {
	return s.accounts.Get(accountID)
}

// Balance returns the account's current balance.
func (s *Service) Balance(accountID string) (float64, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

// Fees returns the account's current informational fee.
func (s *Service) Fees(accountID string) (float64, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return 0, err
	}
	return acc.CalculateFees(), nil
}

// Summary returns the account's listing line.
func (s *Service) Summary(accountID string) (string, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return "", err
	}
	return acc.Summary(), nil
}

// History returns the ledger, oldest first.
func (s *Service) History(accountID string) ([]*account.Transaction, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}
	return acc.TransactionHistory(), nil
}

// ListByUser returns the user's accounts in creation order.
func (s *Service) ListByUser(userID string) []account.Account {
	return s.accounts.ListByUser(userID)
}

// IsValidationError reports whether err came from parameter validation
// rather than a domain rule; the shell re-prompts on these.
func IsValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}
