// Package notification models the messages produced at the core's output
// boundary: their construction from completed transactions, the channel
// enum they are routed on, and the sink capability actual transports
// implement. The core guarantees correct message construction and channel
// selection; delivery itself is an external effect.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
)

// Notification is a deliverable message. InvestmentID and AccountID are
// optional correlation fields used only to enrich the message text.
type Notification struct {
	ID           string
	UserID       string
	Message      string
	Timestamp    time.Time
	Channel      Channel
	InvestmentID string
	AccountID    string
}

// New creates a notification without correlation fields.
func New(id, userID, message string, channel Channel) *Notification {
	return &Notification{
		ID:        id,
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now(),
		Channel:   channel,
	}
}

// NewFromTransaction builds a notification describing a completed
// transaction, tagged with the source account id.
func NewFromTransaction(id string, txn *account.Transaction, channel Channel) *Notification {
	n := New(
		id,
		txn.AccountID(),
		fmt.Sprintf("Transaction %s: %s of $%.2f",
			txn.Type(),
			strings.ToLower(string(txn.Type())),
			txn.Amount()),
		channel,
	)
	n.AccountID = txn.AccountID()
	return n
}

// EnhancedMessage appends the correlation suffix matching the channel
// kind: the investment id on investment channels, the account id on
// transactional channels.
func (n *Notification) EnhancedMessage() string {
	var sb strings.Builder
	sb.WriteString(n.Message)
	if n.Channel.Investment() && n.InvestmentID != "" {
		fmt.Fprintf(&sb, " | Investment ID: %s", n.InvestmentID)
	}
	if n.Channel.Transactional() && n.AccountID != "" {
		fmt.Fprintf(&sb, " | Account ID: %s", n.AccountID)
	}
	return sb.String()
}

// UpdatePreference switches the delivery channel.
func (n *Notification) UpdatePreference(channel Channel) {
	n.Channel = channel
}

// Sink is the delivery capability. The production sink writes a log line;
// tests substitute a capturing sink.
type Sink interface {
	Deliver(n *Notification) error
}
