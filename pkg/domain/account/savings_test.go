package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSavings(t *testing.T, rate float64) *SavingsAccount {
	t.Helper()
	acc, err := NewSavings("ACC-1-0002-0001", "USR-1-0001-0001", rate, "hash")
	require.NoError(t, err)
	return acc
}

func TestSavingsNeverGoesNegative(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 5)

	_, err := acc.Deposit(100, "TXN-1")
	require.NoError(t, err)

	_, err = acc.Withdraw(100.01, "TXN-2")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.InDelta(t, 100.0, acc.Balance(), 1e-9)

	_, err = acc.Withdraw(100, "TXN-3")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, acc.Balance(), 1e-9)
}

func TestSavingsInterestScenario(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 5)

	_, err := acc.Deposit(1000, "TXN-1")
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, acc.Balance(), 1e-9)

	txn, err := acc.ApplyInterest("TXN-2")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, TypeInterest, txn.Type())
	assert.InDelta(t, 50.0, txn.Amount(), 1e-9)
	assert.InDelta(t, 1050.0, acc.Balance(), 1e-9)

	_, err = acc.Withdraw(1100, "TXN-3")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.InDelta(t, 1050.0, acc.Balance(), 1e-9)
}

func TestSavingsInterestCompounds(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 10)

	_, err := acc.Deposit(1000, "TXN-1")
	require.NoError(t, err)

	first, err := acc.ApplyInterest("TXN-2")
	require.NoError(t, err)
	second, err := acc.ApplyInterest("TXN-3")
	require.NoError(t, err)

	assert.InDelta(t, 100.0, first.Amount(), 1e-9)
	// The second application runs on the new balance of $1100.
	assert.InDelta(t, 110.0, second.Amount(), 1e-9)
	assert.InDelta(t, 1210.0, acc.Balance(), 1e-9)
}

func TestSavingsApplyInterestNoOpOnZeroBalance(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 5)

	txn, err := acc.ApplyInterest("TXN-1")
	require.NoError(t, err)
	assert.Nil(t, txn)
	assert.Zero(t, acc.Balance())
	assert.Empty(t, acc.TransactionHistory())
}

func TestSavingsLowBalanceFee(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 5)

	// Below the $100 default minimum: flat fee reported, not charged.
	_, err := acc.Deposit(50, "TXN-1")
	require.NoError(t, err)
	assert.InDelta(t, DefaultLowBalanceFee, acc.CalculateFees(), 1e-9)
	assert.InDelta(t, 50.0, acc.Balance(), 1e-9, "fee must never be deducted")

	_, err = acc.Deposit(50, "TXN-2")
	require.NoError(t, err)
	assert.Zero(t, acc.CalculateFees())
}

func TestSavingsConfigurableThresholds(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 5)
	acc.SetMinimumBalance(500)
	acc.SetLowBalanceFee(12)

	_, err := acc.Deposit(499, "TXN-1")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, acc.CalculateFees(), 1e-9)
}

func TestSavingsSummary(t *testing.T) {
	t.Parallel()
	acc := newTestSavings(t, 2.5)
	_, err := acc.Deposit(40, "TXN-1")
	require.NoError(t, err)

	assert.Equal(t,
		"Savings Account [ID: ACC-1-0002-0001] - Balance: $40.00, Interest Rate: 2.50%, Minimum Balance: $100.00, Fees: $5.00",
		acc.Summary())
}

func TestNewSavingsRejectsNegativeRate(t *testing.T) {
	t.Parallel()
	_, err := NewSavings("ACC-x", "USR-x", -1, "hash")
	assert.Error(t, err)
}
