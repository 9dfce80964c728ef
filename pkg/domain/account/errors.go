package account

import "errors"

var (
	// ErrAmountMustBePositive is returned when a deposit or withdrawal
	// amount is not positive.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal would take the
	// balance below the account's floor (zero for savings, the negated
	// overdraft limit for checking).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidOverdraftLimit is returned when a checking account is
	// created with a negative overdraft limit.
	ErrInvalidOverdraftLimit = errors.New("overdraft limit must not be negative")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotSavings is returned when a savings-only operation is invoked
	// on a checking account.
	ErrNotSavings = errors.New("not a savings account")
)
