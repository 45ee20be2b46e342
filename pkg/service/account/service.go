// Package account exposes the application service over the account domain:
// an in-memory registry keyed by account ID with the serialization the domain
// itself does not provide. Each account is guarded by its own mutex, and
// two-account operations always lock in ascending account-ID order so
// opposing transfers cannot deadlock.
package account

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"

	"github.com/fintech-ro/bancar/pkg/domain/account"
	"github.com/fintech-ro/bancar/pkg/exchange"
	"github.com/fintech-ro/bancar/pkg/notification"
	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when the registry holds no account with the
// requested ID.
var ErrAccountNotFound = errors.New("account not found")

// Snapshot is a point-in-time copy of the account state safe to hand across
// the service boundary.
type Snapshot struct {
	ID             uuid.UUID `json:"id"`
	Balance        float64   `json:"balance"`
	DailyWithdrawn float64   `json:"daily_withdrawn"`
}

type managed struct {
	mu  sync.Mutex
	acc *account.Account
}

func (m *managed) snapshot() Snapshot {
	return Snapshot{
		ID:             m.acc.ID(),
		Balance:        m.acc.Balance(),
		DailyWithdrawn: m.acc.DailyWithdrawn(),
	}
}

// Service owns the account registry and the collaborators injected into
// every account it opens.
type Service struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*managed

	rates    exchange.RateProvider
	notifier notification.Notifier
	logger   *slog.Logger
}

// New builds a Service around the given collaborators. A nil logger uses the
// process default; a nil notifier means accounts skip notification calls.
func New(rates exchange.RateProvider, notifier notification.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts: make(map[uuid.UUID]*managed),
		rates:    rates,
		notifier: notifier,
		logger:   logger,
	}
}

// Open creates and registers a new account with the given opening balance.
func (s *Service) Open(initialBalance float64) (Snapshot, error) {
	builder := account.New().WithBalance(initialBalance)
	if s.rates != nil {
		builder = builder.WithRateProvider(s.rates)
	}
	if s.notifier != nil {
		builder = builder.WithNotifier(s.notifier)
	}
	acc, err := builder.Build()
	if err != nil {
		return Snapshot{}, err
	}

	m := &managed{acc: acc}
	s.mu.Lock()
	s.accounts[acc.ID()] = m
	s.mu.Unlock()

	s.logger.Info("account opened", "account_id", acc.ID(), "balance", initialBalance)
	return m.snapshot(), nil
}

func (s *Service) lookup(id uuid.UUID) (*managed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return m, nil
}

// withAccount runs fn with the account locked.
func (s *Service) withAccount(id uuid.UUID, fn func(*account.Account) error) (Snapshot, error) {
	m, err := s.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := fn(m.acc); err != nil {
		return Snapshot{}, err
	}
	return m.snapshot(), nil
}

// withPair runs fn with both accounts locked, acquiring the locks in
// ascending account-ID order regardless of transfer direction.
func (s *Service) withPair(srcID, dstID uuid.UUID, fn func(src, dst *account.Account) error) (Snapshot, error) {
	src, err := s.lookup(srcID)
	if err != nil {
		return Snapshot{}, err
	}
	dst, err := s.lookup(dstID)
	if err != nil {
		return Snapshot{}, err
	}

	if src == dst {
		src.mu.Lock()
		defer src.mu.Unlock()
	} else {
		first, second := src, dst
		if bytes.Compare(dstID[:], srcID[:]) < 0 {
			first, second = dst, src
		}
		first.mu.Lock()
		defer first.mu.Unlock()
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if err := fn(src.acc, dst.acc); err != nil {
		return Snapshot{}, err
	}
	return src.snapshot(), nil
}

// Balance returns the current state of an account.
func (s *Service) Balance(id uuid.UUID) (Snapshot, error) {
	return s.withAccount(id, func(*account.Account) error { return nil })
}

// Deposit credits the account unconditionally.
func (s *Service) Deposit(id uuid.UUID, amount float64) (Snapshot, error) {
	return s.withAccount(id, func(acc *account.Account) error {
		acc.Deposit(amount)
		return nil
	})
}

// Withdraw debits the account subject to the daily withdrawal limit.
func (s *Service) Withdraw(id uuid.UUID, amount float64) (Snapshot, error) {
	return s.withAccount(id, func(acc *account.Account) error {
		return acc.Withdraw(amount)
	})
}

// ApplyInterest credits a caller-computed interest amount.
func (s *Service) ApplyInterest(id uuid.UUID, amount float64) (Snapshot, error) {
	return s.withAccount(id, func(acc *account.Account) error {
		acc.ApplyInterest(amount)
		return nil
	})
}

// ProjectInterest returns the interest the account would earn over the given
// number of days without mutating anything.
func (s *Service) ProjectInterest(id uuid.UUID, days int) (float64, error) {
	var projected float64
	_, err := s.withAccount(id, func(acc *account.Account) error {
		projected = acc.CalculateInterest(days)
		return nil
	})
	return projected, err
}

// Transfer performs the threshold-checked transfer between two registered
// accounts.
func (s *Service) Transfer(srcID, dstID uuid.UUID, amount float64) (Snapshot, error) {
	return s.withPair(srcID, dstID, func(src, dst *account.Account) error {
		_, err := src.TransferMinFunds(dst, amount)
		return err
	})
}

// TransferRonToEur debits RON from the source and credits the converted EUR
// amount to the destination.
func (s *Service) TransferRonToEur(srcID, dstID uuid.UUID, amountRon float64) (Snapshot, error) {
	return s.withPair(srcID, dstID, func(src, dst *account.Account) error {
		return src.TransferRonToEur(dst, amountRon)
	})
}

// TransferEurToRon debits EUR from the source and credits the converted RON
// amount to the destination.
func (s *Service) TransferEurToRon(srcID, dstID uuid.UUID, amountEur float64) (Snapshot, error) {
	return s.withPair(srcID, dstID, func(src, dst *account.Account) error {
		return src.TransferEurToRon(dst, amountEur)
	})
}

// ConvertRonToEur converts without touching any balance.
func (s *Service) ConvertRonToEur(id uuid.UUID, amountRon float64) (float64, error) {
	var converted float64
	_, err := s.withAccount(id, func(acc *account.Account) error {
		var convErr error
		converted, convErr = acc.ConvertRonToEur(amountRon)
		return convErr
	})
	return converted, err
}

// ConvertEurToRon converts without touching any balance.
func (s *Service) ConvertEurToRon(id uuid.UUID, amountEur float64) (float64, error) {
	var converted float64
	_, err := s.withAccount(id, func(acc *account.Account) error {
		var convErr error
		converted, convErr = acc.ConvertEurToRon(amountEur)
		return convErr
	})
	return converted, err
}

// Report renders the account's text report.
func (s *Service) Report(id uuid.UUID) (string, error) {
	var report string
	_, err := s.withAccount(id, func(acc *account.Account) error {
		report = acc.GenerateAccountReport()
		return nil
	})
	return report, err
}

// Transactions returns the account history, optionally filtered by kind.
func (s *Service) Transactions(id uuid.UUID, kind *account.TransactionKind) ([]account.Transaction, error) {
	var txs []account.Transaction
	_, err := s.withAccount(id, func(acc *account.Account) error {
		if kind != nil {
			txs = acc.TransactionsByKind(*kind)
		} else {
			txs = acc.Transactions()
		}
		return nil
	})
	return txs, err
}

// AdvanceDay starts a new daily withdrawal window on every registered
// account. Day boundaries are an explicit caller-owned trigger.
func (s *Service) AdvanceDay() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.accounts {
		m.mu.Lock()
		m.acc.StartNewDay()
		m.mu.Unlock()
	}
	s.logger.Info("daily withdrawal windows reset", "accounts", len(s.accounts))
}
