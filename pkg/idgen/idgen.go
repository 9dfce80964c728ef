// Package idgen generates process-wide identifiers for transactions,
// accounts, investments and users. Identifiers follow the pattern
// <PREFIX>-<timestamp>-<counter mod 10000>-<random 0..9999>, which keeps
// them sortable in logs and recognizable in audit output.
package idgen

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

const (
	idFormat        = "%s-%d-%04d-%04d"
	maxCounterValue = 10000
	maxRandomValue  = 10000
)

// ID prefixes, one per entity kind.
const (
	PrefixTransaction = "TXN"
	PrefixAccount     = "ACC"
	PrefixInvestment  = "INV"
	PrefixUser        = "USR"
)

// Generator issues identifiers with one monotonic counter per entity kind.
// Counters are atomic, so a Generator is safe for concurrent use even
// though the shell drives it from a single goroutine.
type Generator struct {
	transactionCounter atomic.Uint64
	accountCounter     atomic.Uint64
	investmentCounter  atomic.Uint64
	userCounter        atomic.Uint64
}

// New returns a Generator whose counters start at 1.
func New() *Generator {
	g := &Generator{}
	g.transactionCounter.Store(1)
	g.accountCounter.Store(1)
	g.investmentCounter.Store(1)
	g.userCounter.Store(1)
	return g
}

// TransactionID returns a new TXN-prefixed identifier.
func (g *Generator) TransactionID() string {
	return format(PrefixTransaction, time.Now().UnixMilli(), &g.transactionCounter)
}

// AccountID returns a new ACC-prefixed identifier. Account ids use a
// nanosecond timestamp, matching existing audit records.
func (g *Generator) AccountID() string {
	return format(PrefixAccount, time.Now().UnixNano(), &g.accountCounter)
}

// InvestmentID returns a new INV-prefixed identifier.
func (g *Generator) InvestmentID() string {
	return format(PrefixInvestment, time.Now().UnixMilli(), &g.investmentCounter)
}

// UserID returns a new USR-prefixed identifier.
func (g *Generator) UserID() string {
	return format(PrefixUser, time.Now().UnixMilli(), &g.userCounter)
}

func format(prefix string, timestamp int64, counter *atomic.Uint64) string {
	n := counter.Add(1) - 1
	return fmt.Sprintf(idFormat,
		prefix,
		timestamp,
		n%maxCounterValue,
		rand.IntN(maxRandomValue),
	)
}
