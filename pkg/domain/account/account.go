// Package account holds the bank account aggregate: balance operations,
// same-currency and RON/EUR transfers, interest, the append-only transaction
// history, and the notification policy for large movements.
package account

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fintech-ro/bancar/pkg/exchange"
	"github.com/fintech-ro/bancar/pkg/notification"
	"github.com/google/uuid"
)

const (
	// DefaultMinBalance is the floor a threshold-checked transfer may never
	// bring the source balance down to or below.
	DefaultMinBalance = 1.0
	// DefaultDailyLimit caps the running total withdrawn within one day window.
	DefaultDailyLimit = 10000.0
	// DefaultInterestRate is the annual interest rate used for projections.
	DefaultInterestRate = 0.02

	// largeDepositThreshold is the amount above which a deposit triggers an
	// email notification in addition to the activity log.
	largeDepositThreshold = 50000.0
	// largeWithdrawalThreshold is the amount above which a withdrawal triggers
	// an SMS notification in addition to the activity log.
	largeWithdrawalThreshold = 5000.0

	largeDepositRecipient = "owner@example.com"
	largeDepositSubject   = "Depunere mare"
	largeWithdrawalPhone  = "+40712345678"

	reportLogMessage = "Account report generated"
)

// Account is a single in-memory bank account. It is the only place the
// business invariants live: the minimum-balance floor on threshold-checked
// transfers, the daily withdrawal limit, conversion correctness, and the
// deterministic ordering of notification side effects.
//
// Invariants:
//   - history is append-only; insertion order is chronological order.
//   - dailyWithdrawn changes only through Withdraw and StartNewDay.
//   - every failing operation leaves balance, history and dailyWithdrawn
//     untouched (all-or-nothing per call).
//
// An Account is not safe for concurrent use; callers that share one across
// goroutines must serialize access per account (see pkg/service/account).
type Account struct {
	id             uuid.UUID
	balance        float64
	minBalance     float64
	dailyWithdrawn float64
	dailyLimit     float64
	interestRate   float64
	history        []Transaction
	seq            int64
	rates          exchange.RateProvider
	notifier       notification.Notifier
}

// Builder assembles an Account. Rate provider and notifier are optional: the
// provider defaults to the fixed BNR reference rate and a nil notifier means
// notification calls are skipped entirely.
type Builder struct {
	id       uuid.UUID
	balance  float64
	rates    exchange.RateProvider
	notifier notification.Notifier
}

// New starts a Builder with a fresh identity and a zero balance.
func New() *Builder {
	return &Builder{id: uuid.New()}
}

// WithID sets the account identity, primarily for test setups that need a
// known ordering between two accounts.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance float64) *Builder {
	b.balance = balance
	return b
}

// WithRateProvider substitutes the exchange-rate collaborator.
func (b *Builder) WithRateProvider(rates exchange.RateProvider) *Builder {
	b.rates = rates
	return b
}

// WithNotifier attaches a notification sink.
func (b *Builder) WithNotifier(n notification.Notifier) *Builder {
	b.notifier = n
	return b
}

// Build validates the builder state and returns the account.
func (b *Builder) Build() (*Account, error) {
	if math.IsNaN(b.balance) || math.IsInf(b.balance, 0) {
		return nil, ErrInvalidBalance
	}
	rates := b.rates
	if rates == nil {
		rates = exchange.NewFixed(exchange.ReferenceEurRon)
	}
	return &Account{
		id:           b.id,
		balance:      b.balance,
		minBalance:   DefaultMinBalance,
		dailyLimit:   DefaultDailyLimit,
		interestRate: DefaultInterestRate,
		rates:        rates,
		notifier:     b.notifier,
	}, nil
}

// ID returns the account's immutable identity.
func (a *Account) ID() uuid.UUID { return a.id }

// Balance returns the current stored value in the account's native currency.
func (a *Account) Balance() float64 { return a.balance }

// MinBalance returns the floor enforced by threshold-checked transfers.
func (a *Account) MinBalance() float64 { return a.minBalance }

// DailyLimit returns the ceiling on the daily withdrawn total.
func (a *Account) DailyLimit() float64 { return a.dailyLimit }

// DailyWithdrawn returns the running total withdrawn in the current day window.
func (a *Account) DailyWithdrawn() float64 { return a.dailyWithdrawn }

// InterestRate returns the fixed annual interest rate.
func (a *Account) InterestRate() float64 { return a.interestRate }

// record appends an immutable transaction to the history.
func (a *Account) record(kind TransactionKind, amount float64) {
	a.seq++
	a.history = append(a.history, Transaction{
		ID:      uuid.New(),
		Kind:    kind,
		Amount:  amount,
		Seq:     a.seq,
		Created: time.Now().UTC(),
	})
}

func (a *Account) credit(amount float64, kind TransactionKind) {
	a.balance += amount
	a.record(kind, amount)
}

func (a *Account) debit(amount float64, kind TransactionKind) {
	a.balance -= amount
	a.record(kind, amount)
}

// Deposit adds amount to the balance unconditionally and records a deposit
// transaction. There is deliberately no lower bound on the amount; the
// threshold-checked paths are the only validated ones.
//
// With a notifier attached it always logs the activity, and for amounts above
// the large-deposit threshold it additionally emails the owner. The activity
// log entry precedes the email.
func (a *Account) Deposit(amount float64) {
	a.credit(amount, KindDeposit)
	if a.notifier == nil {
		return
	}
	a.notifier.LogActivity(a.id.String(), "Deposit of "+formatAmount(amount))
	if amount > largeDepositThreshold {
		body := fmt.Sprintf("A deposit of %s was credited to account %s.", formatAmount(amount), a.id)
		a.notifier.SendEmail(largeDepositRecipient, largeDepositSubject, body)
	}
}

// Withdraw subtracts amount from the balance and adds it to the daily
// withdrawn total. It fails with ErrDailyLimitExceeded, mutating nothing,
// when the prospective daily total would exceed the limit. Like Deposit it
// accepts non-positive amounts without rejection.
//
// With a notifier attached it always logs the activity, and for amounts above
// the large-withdrawal threshold it additionally texts the owner. The
// activity log entry precedes the SMS.
func (a *Account) Withdraw(amount float64) error {
	if a.dailyWithdrawn+amount > a.dailyLimit {
		return ErrDailyLimitExceeded
	}
	a.debit(amount, KindWithdraw)
	a.dailyWithdrawn += amount
	if a.notifier == nil {
		return nil
	}
	a.notifier.LogActivity(a.id.String(), "Withdrawal of "+formatAmount(amount))
	if amount > largeWithdrawalThreshold {
		body := fmt.Sprintf("A withdrawal of %s was debited from account %s.", formatAmount(amount), a.id)
		a.notifier.SendSms(largeWithdrawalPhone, body)
	}
	return nil
}

// ApplyInterest credits a caller-computed interest amount and records an
// interest transaction. The amount is not derived from CalculateInterest
// internally; accrual cadence belongs to the caller.
func (a *Account) ApplyInterest(amount float64) {
	a.credit(amount, KindInterest)
}

// CalculateInterest projects simple interest over the given number of days at
// the account's annual rate. Pure: no state change, no history entry.
func (a *Account) CalculateInterest(days int) float64 {
	return a.balance * a.interestRate * float64(days) / 365
}

// StartNewDay resets the daily withdrawn total. Day boundaries are an
// explicit, caller-owned trigger rather than wall-clock driven.
func (a *Account) StartNewDay() {
	a.dailyWithdrawn = 0
}

// TransferFunds moves amount to the destination with no validation at all:
// the destination is credited first, then the source debited, and either side
// may go anywhere the arithmetic takes it. Both legs are recorded as transfer
// transactions; no notifications fire.
func (a *Account) TransferFunds(dest *Account, amount float64) {
	dest.credit(amount, KindTransferIn)
	a.debit(amount, KindTransferOut)
}

// TransferMinFunds is the threshold-checked transfer. It fails with
// ErrInsufficientFunds when the amount is not positive or when the transfer
// would leave the source balance at or below the minimum-balance floor; on
// failure neither account is mutated. On success it credits the destination,
// debits the source and returns the destination account.
func (a *Account) TransferMinFunds(dest *Account, amount float64) (*Account, error) {
	if amount <= 0 {
		return nil, ErrInsufficientFunds
	}
	if a.balance-amount <= a.minBalance {
		return nil, ErrInsufficientFunds
	}
	dest.credit(amount, KindTransferIn)
	a.debit(amount, KindTransferOut)
	return dest, nil
}

// ConvertRonToEur converts a RON amount to EUR at the provider's current
// RON-per-EUR rate. Pure with respect to account state; the only side effect
// is the rate lookup. Fails with ErrAmountMustBePositive for non-positive
// amounts and propagates provider failures.
func (a *Account) ConvertRonToEur(amountRon float64) (float64, error) {
	if amountRon <= 0 {
		return 0, ErrAmountMustBePositive
	}
	rate, err := a.rates.EurToRonRate()
	if err != nil {
		return 0, fmt.Errorf("convert RON to EUR: %w", err)
	}
	return amountRon / rate, nil
}

// ConvertEurToRon converts a EUR amount to RON at the provider's current
// RON-per-EUR rate. Same contract as ConvertRonToEur.
func (a *Account) ConvertEurToRon(amountEur float64) (float64, error) {
	if amountEur <= 0 {
		return 0, ErrAmountMustBePositive
	}
	rate, err := a.rates.EurToRonRate()
	if err != nil {
		return 0, fmt.Errorf("convert EUR to RON: %w", err)
	}
	return amountEur * rate, nil
}

// TransferRonToEur debits amountRon from this RON account and credits the
// converted EUR amount to the destination. The minimum-balance floor is
// checked in source currency units before conversion. The two legs execute
// sequentially with no cross-account atomicity beyond that.
func (a *Account) TransferRonToEur(dest *Account, amountRon float64) error {
	if amountRon <= 0 {
		return ErrAmountMustBePositive
	}
	if a.balance-amountRon <= a.minBalance {
		return ErrInsufficientFunds
	}
	amountEur, err := a.ConvertRonToEur(amountRon)
	if err != nil {
		return err
	}
	a.debit(amountRon, KindTransferOut)
	dest.credit(amountEur, KindTransferIn)
	return nil
}

// TransferEurToRon debits amountEur from this EUR account and credits the
// converted RON amount to the destination. Same contract as TransferRonToEur.
func (a *Account) TransferEurToRon(dest *Account, amountEur float64) error {
	if amountEur <= 0 {
		return ErrAmountMustBePositive
	}
	if a.balance-amountEur <= a.minBalance {
		return ErrInsufficientFunds
	}
	amountRon, err := a.ConvertEurToRon(amountEur)
	if err != nil {
		return err
	}
	a.debit(amountEur, KindTransferOut)
	dest.credit(amountRon, KindTransferIn)
	return nil
}

// Transactions returns a copy of the full history in insertion order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// TransactionsByKind returns the ordered, materialized subsequence of the
// history matching the given kind.
func (a *Account) TransactionsByKind(kind TransactionKind) []Transaction {
	var out []Transaction
	for _, tx := range a.history {
		if tx.Kind == kind {
			out = append(out, tx)
		}
	}
	return out
}

// GenerateAccountReport renders a text summary of the account: balance,
// limits, rate, transaction count and deposit/withdrawal totals. With a
// notifier attached the generation itself is logged as activity; the account
// state is otherwise untouched.
func (a *Account) GenerateAccountReport() string {
	var deposited, withdrawn float64
	for _, tx := range a.history {
		switch tx.Kind {
		case KindDeposit:
			deposited += tx.Amount
		case KindWithdraw:
			withdrawn += tx.Amount
		}
	}

	var b strings.Builder
	b.WriteString("Account Report\n")
	b.WriteString("==============\n")
	fmt.Fprintf(&b, "Account ID:       %s\n", a.id)
	fmt.Fprintf(&b, "Current balance:  %.2f\n", a.balance)
	fmt.Fprintf(&b, "Minimum balance:  %.2f\n", a.minBalance)
	fmt.Fprintf(&b, "Daily limit:      %.2f\n", a.dailyLimit)
	fmt.Fprintf(&b, "Interest rate:    %.2f%% p.a.\n", a.interestRate*100)
	fmt.Fprintf(&b, "Transactions:     %d\n", len(a.history))
	fmt.Fprintf(&b, "Total deposited:  %.2f\n", deposited)
	fmt.Fprintf(&b, "Total withdrawn:  %.2f\n", withdrawn)

	if a.notifier != nil {
		a.notifier.LogActivity(a.id.String(), reportLogMessage)
	}
	return b.String()
}

// formatAmount renders an amount without trailing zeros so notification
// bodies contain the literal figure ("60000", not "60000.000000").
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
