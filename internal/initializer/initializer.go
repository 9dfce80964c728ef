// Package initializer wires configuration, logging and the services into
// a ready-to-run dependency bundle for the shell.
package initializer

import (
	"errors"
	"log/slog"

	"github.com/antoniopaulocuyo/MCASH2/pkg/config"
	"github.com/antoniopaulocuyo/MCASH2/pkg/domain/notification"
	"github.com/antoniopaulocuyo/MCASH2/pkg/idgen"
	"github.com/antoniopaulocuyo/MCASH2/pkg/registry"
	accountsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/account"
	authsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/auth"
	investmentsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/investment"
	notificationsvc "github.com/antoniopaulocuyo/MCASH2/pkg/service/notification"
)

// Deps holds every long-lived dependency the application needs.
type Deps struct {
	Config        *config.App
	Logger        *slog.Logger
	Registry      *registry.Registry
	IDs           *idgen.Generator
	Auth          *authsvc.Service
	Accounts      *accountsvc.Service
	Investments   *investmentsvc.Service
	Notifications *notificationsvc.Service
}

// New loads configuration and builds the full dependency graph.
func New() (*Deps, error) {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return nil, err
	}

	logger := SetupLogger(cfg.Log)

	channel, err := notification.ParseChannel(cfg.Notifications.Channel)
	if err != nil {
		if !errors.Is(err, notification.ErrUnknownChannel) {
			return nil, err
		}
		logger.Warn("unknown notification channel, falling back to in-app",
			"channel", cfg.Notifications.Channel)
		channel = notification.ChannelInAppSent
	}

	reg := registry.New()
	ids := idgen.New()

	notifications := notificationsvc.New(
		notificationsvc.NewLogSink(logger), channel, ids, logger)
	accounts := accountsvc.New(reg.Accounts, ids, notifications, cfg.Savings, logger)
	investments := investmentsvc.New(reg.Investments, reg.Accounts, ids, logger)
	auth := authsvc.New(reg.Users, ids, logger)

	return &Deps{
		Config:        cfg,
		Logger:        logger,
		Registry:      reg,
		IDs:           ids,
		Auth:          auth,
		Accounts:      accounts,
		Investments:   investments,
		Notifications: notifications,
	}, nil
}
