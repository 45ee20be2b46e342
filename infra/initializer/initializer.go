package initializer

import (
	"log/slog"

	infraexchange "github.com/fintech-ro/bancar/infra/exchange"
	infranotification "github.com/fintech-ro/bancar/infra/notification"
	"github.com/fintech-ro/bancar/pkg/config"
	accountsvc "github.com/fintech-ro/bancar/pkg/service/account"
)

// Deps holds the fully wired application dependencies.
type Deps struct {
	Logger  *slog.Logger
	Service *accountsvc.Service
}

// InitializeDependencies builds the live collaborator implementations from
// configuration and hands them to a fresh account service.
func InitializeDependencies(cfg *config.App) *Deps {
	logger := SetupLogger(cfg.Log)

	rates := infraexchange.NewBNR(cfg.Exchange, logger)
	notifier := infranotification.NewSlogNotifier(logger)

	return &Deps{
		Logger:  logger,
		Service: accountsvc.New(rates, notifier, logger),
	}
}
