package investment

import (
	"fmt"
	"strings"
	"time"
)

// Stock is an equity holding. The ticker is immutable; the dividend yield
// (a decimal fraction, e.g. 0.02 for 2%) may be revised.
type Stock struct {
	base
	ticker        string
	dividendYield float64
}

// NewStock creates a stock holding. Quantity must be at least 1 and both
// prices must be positive.
func NewStock(
	id, userID, name, ticker string,
	purchasePrice, currentPrice float64,
	quantity int,
	dividendYield float64,
	purchaseDate time.Time,
) (*Stock, error) {
	b, err := newBase(id, userID, name, purchasePrice, currentPrice, quantity, purchaseDate)
	if err != nil {
		return nil, err
	}
	return &Stock{base: b, ticker: ticker, dividendYield: dividendYield}, nil
}

func (s *Stock) Kind() Kind     { return KindStock }
func (s *Stock) Ticker() string { return s.ticker }

// DividendYield returns the current yield as a decimal fraction.
func (s *Stock) DividendYield() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dividendYield
}

// SetDividendYield revises the dividend yield.
func (s *Stock) SetDividendYield(yield float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dividendYield = yield
}

// CalculateDividends returns the projected annual dividend payout:
// currentPrice * dividendYield * quantity.
func (s *Stock) CalculateDividends() float64 {
	return s.CurrentPrice() * s.DividendYield() * float64(s.quantity)
}

// Summary renders the stock valuation report.
func (s *Stock) Summary() string {
	gainLoss := s.GainLoss()
	sign := ""
	if gainLoss >= 0 {
		sign = "+"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock Investment Summary\n")
	fmt.Fprintf(&sb, "Stock: %s (%s)\n", s.name, s.ticker)
	fmt.Fprintf(&sb, "Investment ID: %s\n", s.id)
	fmt.Fprintf(&sb, "Quantity: %d shares\n", s.quantity)
	fmt.Fprintf(&sb, "Avg Purchase Price: $%.2f\n", s.purchasePrice)
	fmt.Fprintf(&sb, "Current Price: $%.2f\n", s.CurrentPrice())
	fmt.Fprintf(&sb, "Total Value: $%.2f\n", s.CurrentValue())
	fmt.Fprintf(&sb, "Total Gain/Loss: %s$%.2f (%.2f%%)\n",
		sign, gainLoss, (s.CurrentPrice()/s.purchasePrice-1)*100)
	fmt.Fprintf(&sb, "Dividend Yield: %.2f%%\n", s.DividendYield()*100)
	fmt.Fprintf(&sb, "Annual Dividends: $%.2f", s.CalculateDividends())
	return sb.String()
}
