// Package investment provides the portfolio use-cases: creating stock and
// bond holdings against an account, repricing them, and the read-side
// queries.
package investment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/investment"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	"github.com/go-playground/validator/v10"
)

// Service implements the investment use-cases. Holdings are registered
// globally for lookup-by-id and linked to the owning account.
type Service struct {
	investments *registry.Investments
	accounts    *registry.Accounts
	ids         *idgen.Generator
	validate    *validator.Validate
	logger      *slog.Logger
}

// New creates a Service.
func New(
	investments *registry.Investments,
	accounts *registry.Accounts,
	ids *idgen.Generator,
	logger *slog.Logger,
) *Service {
	return &Service{
		investments: investments,
		accounts:    accounts,
		ids:         ids,
		validate:    validator.New(),
		logger:      logger,
	}
}

// StockParams describes a new stock holding.
type StockParams struct {
	AccountID     string  `validate:"required"`
	Name          string  `validate:"required"`
	Ticker        string  `validate:"required"`
	PurchasePrice float64 `validate:"gt=0"`
	CurrentPrice  float64 `validate:"gt=0"`
	Quantity      int     `validate:"gte=1"`
	DividendYield float64 `validate:"gte=0"`
}

// CreateStock creates a stock holding owned by the account's user and
// linked to the account.
func (s *Service) CreateStock(p StockParams) (*investment.Stock, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid stock parameters: %w", err)
	}
	acc, err := s.accounts.Get(p.AccountID)
	if err != nil {
		return nil, err
	}

	stock, err := investment.NewStock(
		s.ids.InvestmentID(), acc.UserID(), p.Name, p.Ticker,
		p.PurchasePrice, p.CurrentPrice, p.Quantity, p.DividendYield, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	s.investments.Put(stock)
	acc.AddInvestment(stock)
	s.logger.Info("stock investment created",
		"investment_id", stock.ID(), "account_id", p.AccountID, "ticker", p.Ticker, "quantity", p.Quantity)
	return stock, nil
}

// BondParams describes a new bond holding.
type BondParams struct {
	AccountID     string    `validate:"required"`
	Name          string    `validate:"required"`
	Issuer        string    `validate:"required"`
	PurchasePrice float64   `validate:"gt=0"`
	CurrentPrice  float64   `validate:"gt=0"`
	Quantity      int       `validate:"gte=1"`
	FaceValue     float64   `validate:"gt=0"`
	CouponRate    float64   `validate:"gte=0"`
	MaturityDate  time.Time `validate:"required"`
}

// CreateBond creates a bond holding owned by the account's user and
// linked to the account.
func (s *Service) CreateBond(p BondParams) (*investment.Bond, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid bond parameters: %w", err)
	}
	acc, err := s.accounts.Get(p.AccountID)
	if err != nil {
		return nil, err
	}

	bond, err := investment.NewBond(
		s.ids.InvestmentID(), acc.UserID(), p.Name, p.Issuer,
		p.PurchasePrice, p.CurrentPrice, p.Quantity,
		p.FaceValue, p.CouponRate, p.MaturityDate, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	s.investments.Put(bond)
	acc.AddInvestment(bond)
	s.logger.Info("bond investment created",
		"investment_id", bond.ID(), "account_id", p.AccountID, "issuer", p.Issuer, "quantity", p.Quantity)
	return bond, nil
}

// UpdatePrice replaces an investment's current price.
func (s *Service) UpdatePrice(investmentID string, price float64) error {
	inv, err := s.investments.Get(investmentID)
	if err != nil {
		return err
	}
	if err := inv.UpdateCurrentPrice(price); err != nil {
		s.logger.Error("price update rejected",
			"investment_id", investmentID, "price", price, "error", err)
		return err
	}
	s.logger.Info("price updated",
		"investment_id", investmentID, "price", price, "gain_loss", inv.GainLoss())
	return nil
}

// Summary returns the investment's valuation report.
func (s *Service) Summary(investmentID string) (string, error) {
	inv, err := s.investments.Get(investmentID)
	if err != nil {
		return "", err
	}
	return inv.Summary(), nil
}

// Dividends returns the investment's projected annual payout.
func (s *Service) Dividends(investmentID string) (float64, error) {
	inv, err := s.investments.Get(investmentID)
	if err != nil {
		return 0, err
	}
	return inv.CalculateDividends(), nil
}

// Get returns the investment by id.
func (s *Service) Get(investmentID string) (investment.Investment, error) {
	return s.investments.Get(investmentID)
}

// ListByAccount returns the account's holdings in attachment order.
func (s *Service) ListByAccount(accountID string) ([]investment.Investment, error) {
	acc, err := s.accounts.Get(accountID)
	if err != nil {
		return nil, err
	}
	return acc.Investments(), nil
}
