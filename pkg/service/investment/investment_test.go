package investment_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	domainaccount "github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
	domaininvestment "github.com/antoniopaulocuyo/MCASH2/pkg/domain/investment"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	investmentsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/investment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*investmentsvc.Service, domainaccount.Account) {
	t.Helper()
	reg := registry.New()
	acc, err := domainaccount.NewChecking("ACC-1", "USR-1", 0, "hash")
	require.NoError(t, err)
	reg.Accounts.Put(acc)

	svc := investmentsvc.New(
		reg.Investments, reg.Accounts, idgen.New(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return svc, acc
}

func TestCreateStockLinksToAccount(t *testing.T) {
	t.Parallel()
	svc, acc := newTestService(t)

	stock, err := svc.CreateStock(investmentsvc.StockParams{
		AccountID:     acc.ID(),
		Name:          "Apple Inc",
		Ticker:        "AAPL",
		PurchasePrice: 50,
		CurrentPrice:  60,
		Quantity:      10,
		DividendYield: 0.02,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^INV-\d+-\d{4}-\d{4}$`, stock.ID())
	assert.Equal(t, "USR-1", stock.UserID(), "holding belongs to the account owner")

	// Registered globally and linked to the account.
	got, err := svc.Get(stock.ID())
	require.NoError(t, err)
	assert.Equal(t, stock.ID(), got.ID())

	holdings, err := svc.ListByAccount(acc.ID())
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, stock.ID(), holdings[0].ID())
}

func TestCreateBond(t *testing.T) {
	t.Parallel()
	svc, acc := newTestService(t)

	bond, err := svc.CreateBond(investmentsvc.BondParams{
		AccountID:     acc.ID(),
		Name:          "US Treasury 2027",
		Issuer:        "US Treasury",
		PurchasePrice: 950,
		CurrentPrice:  950,
		Quantity:      2,
		FaceValue:     1000,
		CouponRate:    0.05,
		MaturityDate:  time.Now().AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	dividends, err := svc.Dividends(bond.ID())
	require.NoError(t, err)
	assert.InDelta(t, 100.0, dividends, 1e-9)
}

func TestCreateValidatesParams(t *testing.T) {
	t.Parallel()
	svc, acc := newTestService(t)

	t.Run("stock with zero quantity", func(t *testing.T) {
		_, err := svc.CreateStock(investmentsvc.StockParams{
			AccountID: acc.ID(), Name: "Apple", Ticker: "AAPL",
			PurchasePrice: 50, CurrentPrice: 60, Quantity: 0,
		})
		assert.Error(t, err)
	})
	t.Run("bond without maturity date", func(t *testing.T) {
		_, err := svc.CreateBond(investmentsvc.BondParams{
			AccountID: acc.ID(), Name: "Bond", Issuer: "Gov",
			PurchasePrice: 950, CurrentPrice: 950, Quantity: 1,
			FaceValue: 1000, CouponRate: 0.05,
		})
		assert.Error(t, err)
	})
	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.CreateStock(investmentsvc.StockParams{
			AccountID: "ACC-missing", Name: "Apple", Ticker: "AAPL",
			PurchasePrice: 50, CurrentPrice: 60, Quantity: 1,
		})
		assert.ErrorIs(t, err, domainaccount.ErrAccountNotFound)
	})
}

func TestUpdatePrice(t *testing.T) {
	t.Parallel()
	svc, acc := newTestService(t)

	stock, err := svc.CreateStock(investmentsvc.StockParams{
		AccountID: acc.ID(), Name: "Apple", Ticker: "AAPL",
		PurchasePrice: 50, CurrentPrice: 60, Quantity: 10, DividendYield: 0.02,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePrice(stock.ID(), 70))
	assert.InDelta(t, 200.0, stock.GainLoss(), 1e-9)

	err = svc.UpdatePrice(stock.ID(), -1)
	assert.ErrorIs(t, err, domaininvestment.ErrInvalidPrice)

	err = svc.UpdatePrice("INV-missing", 10)
	assert.ErrorIs(t, err, domaininvestment.ErrNotFound)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	svc, acc := newTestService(t)

	stock, err := svc.CreateStock(investmentsvc.StockParams{
		AccountID: acc.ID(), Name: "Apple Inc", Ticker: "AAPL",
		PurchasePrice: 50, CurrentPrice: 60, Quantity: 10, DividendYield: 0.02,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(stock.ID())
	require.NoError(t, err)
	assert.Contains(t, summary, "Apple Inc (AAPL)")

	_, err = svc.Summary("INV-missing")
	assert.ErrorIs(t, err, domaininvestment.ErrNotFound)
}
