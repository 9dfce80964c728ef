package investment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStock(t *testing.T) *Stock {
	t.Helper()
	s, err := NewStock(
		"INV-1-0001-0001", "USR-1-0001-0001", "Apple Inc", "AAPL",
		50.0, 60.0, 10, 0.02, time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestStockValuation(t *testing.T) {
	t.Parallel()
	s := newTestStock(t)

	// Purchased at $50, current $60, quantity 10, yield 0.02.
	assert.InDelta(t, 600.0, s.CurrentValue(), 1e-9)
	assert.InDelta(t, 100.0, s.GainLoss(), 1e-9)
	assert.InDelta(t, 12.0, s.CalculateDividends(), 1e-9)
}

func TestStockUpdateCurrentPrice(t *testing.T) {
	t.Parallel()
	s := newTestStock(t)

	require.NoError(t, s.UpdateCurrentPrice(45.0))
	assert.InDelta(t, 45.0, s.CurrentPrice(), 1e-9)
	// Gain/loss is derived from the new price, not stored.
	assert.InDelta(t, -50.0, s.GainLoss(), 1e-9)
	// Purchase price and quantity are untouched.
	assert.InDelta(t, 50.0, s.PurchasePrice(), 1e-9)
	assert.Equal(t, 10, s.Quantity())
}

func TestStockUpdateCurrentPriceRejectsNonPositive(t *testing.T) {
	t.Parallel()
	s := newTestStock(t)

	for _, price := range []float64{0, -1} {
		err := s.UpdateCurrentPrice(price)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	}
	assert.InDelta(t, 60.0, s.CurrentPrice(), 1e-9, "price must be unchanged after a rejected update")
}

func TestStockSetDividendYield(t *testing.T) {
	t.Parallel()
	s := newTestStock(t)

	s.SetDividendYield(0.05)
	assert.InDelta(t, 30.0, s.CalculateDividends(), 1e-9)
}

func TestNewStockValidation(t *testing.T) {
	t.Parallel()
	now := time.Now()

	t.Run("quantity below one", func(t *testing.T) {
		_, err := NewStock("INV-x", "USR-x", "Apple", "AAPL", 50, 60, 0, 0.02, now)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
	t.Run("non-positive price", func(t *testing.T) {
		_, err := NewStock("INV-x", "USR-x", "Apple", "AAPL", -50, 60, 1, 0.02, now)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestStockSummary(t *testing.T) {
	t.Parallel()
	s := newTestStock(t)

	summary := s.Summary()
	assert.Contains(t, summary, "Apple Inc (AAPL)")
	assert.Contains(t, summary, "10 shares")
	assert.Contains(t, summary, "Total Value: $600.00")
	assert.Contains(t, summary, "Total Gain/Loss: +$100.00 (20.00%)")
	assert.Contains(t, summary, "Dividend Yield: 2.00%")
	assert.Contains(t, summary, "Annual Dividends: $12.00")
}
