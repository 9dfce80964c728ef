// Package notification turns completed transactions into deliverable
// messages and pushes them through a pluggable sink. Delivery failures
// are logged and never surface to the financial operation that triggered
// them.
package notification

import (
	"log/slog"

	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/account"
	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/notification"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
)

// Service builds and dispatches notifications.
type Service struct {
	sink    notification.Sink
	channel notification.Channel
	ids     *idgen.Generator
	logger  *slog.Logger
}

// New creates a Service dispatching on the given channel.
func New(sink notification.Sink, channel notification.Channel, ids *idgen.Generator, logger *slog.Logger) *Service {
	return &Service{sink: sink, channel: channel, ids: ids, logger: logger}
}

// NotifyTransaction builds a notification for a completed transaction and
// dispatches it. Errors are swallowed after logging; a failed delivery
// must not fail the transaction.
func (s *Service) NotifyTransaction(txn *account.Transaction) {
	n := notification.NewFromTransaction(s.ids.TransactionID(), txn, s.channel)
	if err := s.Dispatch(n); err != nil {
		s.logger.Error("notification dispatch failed",
			"notification_id", n.ID, "channel", n.Channel, "error", err)
	}
}

// Dispatch resolves the notification's channel and hands it to the sink.
// An unrecognized channel yields ErrUnknownChannel.
func (s *Service) Dispatch(n *notification.Notification) error {
	medium, err := n.Channel.Medium()
	if err != nil {
		s.logger.Warn("unknown notification channel", "channel", n.Channel)
		return err
	}
	s.logger.Debug("dispatching notification",
		"notification_id", n.ID, "medium", medium, "user_id", n.UserID)
	return s.sink.Deliver(n)
}

// LogSink is the production sink: "sending" a notification is a log line,
// not a gateway call.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the enhanced message on the channel's medium.
func (s *LogSink) Deliver(n *notification.Notification) error {
	medium, err := n.Channel.Medium()
	if err != nil {
		return err
	}
	s.logger.Info("sending notification",
		"medium", medium,
		"user_id", n.UserID,
		"message", n.EnhancedMessage(),
	)
	return nil
}

// CaptureSink records delivered notifications; tests substitute it for
// the LogSink.
type CaptureSink struct {
	Delivered []*notification.Notification
}

// Deliver appends the notification to Delivered.
func (s *CaptureSink) Deliver(n *notification.Notification) error {
	s.Delivered = append(s.Delivered, n)
	return nil
}
