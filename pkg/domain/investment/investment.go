// Package investment models the holdings a banking customer can attach to
// an account: stocks and bonds. The two variants share identity, pricing
// and quantity state; valuation figures (current value, gain/loss) are
// derived on demand and never stored.
package investment

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrInvalidPrice is returned when a price update is zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidQuantity is returned when an investment is created with a
	// quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrNotFound is returned when an investment cannot be found.
	ErrNotFound = errors.New("investment not found")
)

// Kind discriminates the closed set of investment variants.
type Kind string

const (
	KindStock Kind = "stock"
	KindBond  Kind = "bond"
)

// Investment is the capability shared by the Stock and Bond variants.
// The set of variants is closed: nothing outside this package can embed
// the common state.
type Investment interface {
	ID() string
	UserID() string
	Kind() Kind
	Name() string
	Quantity() int
	PurchasePrice() float64
	CurrentPrice() float64
	PurchaseDate() time.Time

	// CurrentValue is currentPrice * quantity, recomputed per call.
	CurrentValue() float64
	// GainLoss is (currentPrice - purchasePrice) * quantity.
	GainLoss() float64
	// CalculateDividends is the variant-specific annual payout.
	CalculateDividends() float64
	// UpdateCurrentPrice replaces the current price. Fails with
	// ErrInvalidPrice when the new price is not positive.
	UpdateCurrentPrice(price float64) error
	// Summary renders a human-readable valuation report.
	Summary() string
}

// base holds the state common to both variants. Quantity and purchase
// price are immutable after creation; only the current price may change.
type base struct {
	id            string
	userID        string
	name          string
	purchasePrice float64
	quantity      int
	purchaseDate  time.Time

	mu           sync.Mutex
	currentPrice float64
}

func newBase(id, userID, name string, purchasePrice, currentPrice float64, quantity int, purchaseDate time.Time) (base, error) {
	if quantity < 1 {
		return base{}, ErrInvalidQuantity
	}
	if purchasePrice <= 0 || currentPrice <= 0 {
		return base{}, ErrInvalidPrice
	}
	return base{
		id:            id,
		userID:        userID,
		name:          name,
		purchasePrice: purchasePrice,
		currentPrice:  currentPrice,
		quantity:      quantity,
		purchaseDate:  purchaseDate,
	}, nil
}

func (b *base) ID() string              { return b.id }
func (b *base) UserID() string          { return b.userID }
func (b *base) Name() string            { return b.name }
func (b *base) Quantity() int           { return b.quantity }
func (b *base) PurchasePrice() float64  { return b.purchasePrice }
func (b *base) PurchaseDate() time.Time { return b.purchaseDate }

func (b *base) CurrentPrice() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentPrice
}

func (b *base) CurrentValue() float64 {
	return b.CurrentPrice() * float64(b.quantity)
}

func (b *base) GainLoss() float64 {
	return (b.CurrentPrice() - b.purchasePrice) * float64(b.quantity)
}

func (b *base) UpdateCurrentPrice(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentPrice = price
	return nil
}
