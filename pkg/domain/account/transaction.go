package account

import (
	"errors"
	"fmt"
	"time"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TypeDeposit    TransactionType = "DEPOSIT"
	TypeWithdrawal TransactionType = "WITHDRAWAL"
	TypeInterest   TransactionType = "INTEREST"
)

// Transaction is an immutable record of a balance-affecting event. It is
// appended to exactly one account's ledger and never mutated afterwards.
// Amount is the positive magnitude of the event; the type carries the sign.
type Transaction struct {
	id          string
	accountID   string
	amount      float64
	txType      TransactionType
	description string
	timestamp   time.Time
}

// NewTransaction creates a ledger entry. ID, account id, a positive amount
// and a type are required; the description is optional and may be empty.
func NewTransaction(id, accountID string, amount float64, txType TransactionType, description string) (*Transaction, error) {
	if id == "" || accountID == "" {
		return nil, errors.New("transaction id and account id are required")
	}
	if amount <= 0 {
		return nil, ErrAmountMustBePositive
	}
	switch txType {
	case TypeDeposit, TypeWithdrawal, TypeInterest:
	default:
		return nil, fmt.Errorf("unknown transaction type %q", txType)
	}
	return &Transaction{
		id:          id,
		accountID:   accountID,
		amount:      amount,
		txType:      txType,
		description: description,
		timestamp:   time.Now(),
	}, nil
}

func (t *Transaction) ID() string            { return t.id }
func (t *Transaction) AccountID() string     { return t.accountID }
func (t *Transaction) Amount() float64       { return t.amount }
func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) Description() string   { return t.description }
func (t *Transaction) Timestamp() time.Time  { return t.timestamp }

// SignedEffect is the transaction's contribution to the account balance.
func (t *Transaction) SignedEffect() float64 {
	if t.txType == TypeWithdrawal {
		return -t.amount
	}
	return t.amount
}

// Details renders a single audit line for transaction-history listings.
func (t *Transaction) Details() string {
	return fmt.Sprintf("[%s] %s: $%.2f - %s (%s)",
		t.timestamp.Format("2006-01-02 15:04:05"),
		t.txType, t.amount, t.description, t.id)
}
