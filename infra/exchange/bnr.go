// Package exchange provides the live exchange-rate provider wired into the
// server and CLI.
package exchange

import (
	"log/slog"

	"github.com/fintech-ro/bancar/pkg/config"
	"github.com/fintech-ro/bancar/pkg/exchange"
)

// BNR serves the National Bank of Romania EUR/RON reference rate. Fetching
// the rate over HTTP is out of scope, so the rate comes from configuration;
// this type is the substitution point where a networked provider would live.
type BNR struct {
	rate   float64
	logger *slog.Logger
}

// NewBNR builds the provider from configuration. A missing or non-positive
// configured rate falls back to the built-in reference rate.
func NewBNR(cfg *config.Exchange, logger *slog.Logger) *BNR {
	rate := exchange.ReferenceEurRon
	if cfg != nil && cfg.EurRonRate > 0 {
		rate = cfg.EurRonRate
	}
	return &BNR{rate: rate, logger: logger}
}

// EurToRonRate returns the configured RON-per-EUR reference rate.
func (p *BNR) EurToRonRate() (float64, error) {
	if p.rate <= 0 {
		return 0, exchange.ErrRateUnavailable
	}
	if p.logger != nil {
		p.logger.Debug("serving EUR/RON reference rate", "rate", p.rate)
	}
	return p.rate, nil
}
