package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionRequiresMandatoryFields(t *testing.T) {
	t.Parallel()

	t.Run("missing id", func(t *testing.T) {
		_, err := NewTransaction("", "ACC-1", 10, TypeDeposit, "")
		assert.Error(t, err)
	})
	t.Run("missing account id", func(t *testing.T) {
		_, err := NewTransaction("TXN-1", "", 10, TypeDeposit, "")
		assert.Error(t, err)
	})
	t.Run("non-positive amount", func(t *testing.T) {
		_, err := NewTransaction("TXN-1", "ACC-1", 0, TypeDeposit, "")
		assert.ErrorIs(t, err, ErrAmountMustBePositive)
	})
	t.Run("unknown type", func(t *testing.T) {
		_, err := NewTransaction("TXN-1", "ACC-1", 10, TransactionType("REFUND"), "")
		assert.Error(t, err)
	})
	t.Run("description is optional", func(t *testing.T) {
		txn, err := NewTransaction("TXN-1", "ACC-1", 10, TypeDeposit, "")
		require.NoError(t, err)
		assert.Empty(t, txn.Description())
	})
}

func TestTransactionSignedEffect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		txType TransactionType
		want   float64
	}{
		{TypeDeposit, 25},
		{TypeWithdrawal, -25},
		{TypeInterest, 25},
	}
	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			txn, err := NewTransaction("TXN-1", "ACC-1", 25, tt.txType, "")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, txn.SignedEffect(), 1e-9)
		})
	}
}

func TestTransactionDetails(t *testing.T) {
	t.Parallel()
	txn, err := NewTransaction("TXN-1-0001-0001", "ACC-1", 42.5, TypeWithdrawal, "Withdrawal from account")
	require.NoError(t, err)

	details := txn.Details()
	assert.Contains(t, details, "WITHDRAWAL: $42.50")
	assert.Contains(t, details, "Withdrawal from account")
	assert.Contains(t, details, "TXN-1-0001-0001")
}
