// Package exchange defines the capability an account uses to obtain the
// EUR/RON exchange rate. Implementations may be live providers or
// deterministic test doubles; the account never cares which.
package exchange

import "errors"

// ReferenceEurRon is the BNR reference rate used when no provider is
// injected: how many RON buy 1 EUR.
const ReferenceEurRon = 4.97

// ErrRateUnavailable is returned when a provider cannot serve a usable rate.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateProvider supplies the current EUR to RON exchange rate, expressed as
// RON per 1 EUR. The rate must be positive; providers that reach out to an
// external source may fail, and callers must treat that as recoverable.
type RateProvider interface {
	EurToRonRate() (float64, error)
}

// Fixed is a RateProvider that always serves the same rate. It backs the
// account's default wiring and deterministic tests.
type Fixed struct {
	rate float64
}

// NewFixed returns a provider pinned to the given RON-per-EUR rate.
func NewFixed(rate float64) *Fixed {
	return &Fixed{rate: rate}
}

func (f *Fixed) EurToRonRate() (float64, error) {
	if f.rate <= 0 {
		return 0, ErrRateUnavailable
	}
	return f.rate, nil
}

// Func adapts a plain function to the RateProvider interface.
type Func func() (float64, error)

func (fn Func) EurToRonRate() (float64, error) { return fn() }
