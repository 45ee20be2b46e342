package account

import "errors"

var (
	// ErrAmountMustBePositive is returned when an amount that is required to be
	// positive is zero or negative (currency conversions and cross-currency
	// transfers).
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a threshold-checked transfer would
	// leave the source account at or below its minimum balance, or when the
	// transfer amount itself is not positive.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDailyLimitExceeded is returned when a withdrawal would push the
	// running daily total over the account's daily withdrawal limit.
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrInvalidBalance is returned by the builder when the initial balance is
	// not a finite number.
	ErrInvalidBalance = errors.New("initial balance must be a finite number")
)
