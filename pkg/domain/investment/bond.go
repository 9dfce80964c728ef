package investment

import (
	"fmt"
	"strings"
	"time"
)

const daysPerYear = 365.0

// Bond is a fixed-income holding. Maturity date, coupon rate, face value
// and issuer are immutable after creation.
type Bond struct {
	base
	maturityDate time.Time
	couponRate   float64
	faceValue    float64
	issuer       string
}

// NewBond creates a bond holding. The coupon rate is a decimal fraction
// (e.g. 0.05 for 5%).
func NewBond(
	id, userID, name, issuer string,
	purchasePrice, currentPrice float64,
	quantity int,
	faceValue, couponRate float64,
	maturityDate time.Time,
	purchaseDate time.Time,
) (*Bond, error) {
	b, err := newBase(id, userID, name, purchasePrice, currentPrice, quantity, purchaseDate)
	if err != nil {
		return nil, err
	}
	if faceValue <= 0 {
		return nil, ErrInvalidPrice
	}
	return &Bond{
		base:         b,
		maturityDate: maturityDate,
		couponRate:   couponRate,
		faceValue:    faceValue,
		issuer:       issuer,
	}, nil
}

func (b *Bond) Kind() Kind              { return KindBond }
func (b *Bond) MaturityDate() time.Time { return b.maturityDate }
func (b *Bond) CouponRate() float64     { return b.couponRate }
func (b *Bond) FaceValue() float64      { return b.faceValue }
func (b *Bond) Issuer() string          { return b.issuer }

// CalculateDividends returns the annual coupon payout:
// faceValue * couponRate * quantity.
func (b *Bond) CalculateDividends() float64 {
	return b.faceValue * b.couponRate * float64(b.quantity)
}

// DaysToMaturity returns whole days between at and the maturity date.
// Negative once the bond has matured.
func (b *Bond) DaysToMaturity(at time.Time) int {
	return int(b.maturityDate.Sub(at).Hours() / 24)
}

// YieldToMaturity approximates YTM relative to at:
// (faceValue - currentPrice) / currentPrice / yearsToMaturity + couponRate.
func (b *Bond) YieldToMaturity(at time.Time) float64 {
	yearsToMaturity := float64(b.DaysToMaturity(at)) / daysPerYear
	return (b.faceValue-b.CurrentPrice())/b.CurrentPrice()/yearsToMaturity + b.couponRate
}

// Summary renders the bond valuation report. Days to maturity and yield
// to maturity are computed against the wall clock at call time.
func (b *Bond) Summary() string {
	now := time.Now()
	gainLoss := b.GainLoss()
	sign := ""
	if gainLoss >= 0 {
		sign = "+"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bond Investment Summary\n")
	fmt.Fprintf(&sb, "Bond: %s (%s)\n", b.name, b.issuer)
	fmt.Fprintf(&sb, "Investment ID: %s\n", b.id)
	fmt.Fprintf(&sb, "Quantity: %d bonds\n", b.quantity)
	fmt.Fprintf(&sb, "Face Value: $%.2f per bond\n", b.faceValue)
	fmt.Fprintf(&sb, "Purchase Price: $%.2f\n", b.purchasePrice)
	fmt.Fprintf(&sb, "Current Price: $%.2f\n", b.CurrentPrice())
	fmt.Fprintf(&sb, "Maturity Date: %s\n", b.maturityDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Days to Maturity: %d\n", b.DaysToMaturity(now))
	fmt.Fprintf(&sb, "Coupon Rate: %.2f%%\n", b.couponRate*100)
	fmt.Fprintf(&sb, "Annual Coupons: $%.2f\n", b.CalculateDividends())
	fmt.Fprintf(&sb, "Yield to Maturity: %.2f%%\n", b.YieldToMaturity(now)*100)
	fmt.Fprintf(&sb, "Total Value: $%.2f\n", b.CurrentValue())
	fmt.Fprintf(&sb, "Total Gain/Loss: %s$%.2f", sign, gainLoss)
	return sb.String()
}
