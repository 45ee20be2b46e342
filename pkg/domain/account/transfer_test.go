package account_test

import (
	"testing"

	"github.com/fintech-ro/bancar/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPair(t *testing.T, srcInit, dstInit float64) (src, dst *account.Account) {
	t.Helper()
	return newAccount(t, srcInit), newAccount(t, dstInit)
}

func TestTransferFunds(t *testing.T) {
	t.Parallel()

	t.Run("updates both accounts", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 1000000, 500000)
		src.TransferFunds(dst, 250000)

		assert.InDelta(t, 750000.0, src.Balance(), 0.01)
		assert.InDelta(t, 750000.0, dst.Balance(), 0.01)
	})

	t.Run("records transfer legs", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 1000, 0)
		src.TransferFunds(dst, 400)

		out := src.TransactionsByKind(account.KindTransferOut)
		require.Len(t, out, 1)
		assert.InDelta(t, 400.0, out[0].Amount, 0.01)
		in := dst.TransactionsByKind(account.KindTransferIn)
		require.Len(t, in, 1)
		assert.InDelta(t, 400.0, in[0].Amount, 0.01)
	})

	t.Run("no validation whatsoever", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 10, 0)
		src.TransferFunds(dst, 10000)
		assert.InDelta(t, -9990.0, src.Balance(), 0.01)
		assert.InDelta(t, 10000.0, dst.Balance(), 0.01)
	})

	t.Run("does not touch the daily withdrawal window", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 100000, 0)
		src.TransferFunds(dst, 50000)
		assert.Zero(t, src.DailyWithdrawn())
	})
}

func TestTransferMinFunds(t *testing.T) {
	t.Parallel()

	t.Run("inside the valid domain", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 0)
		got, err := src.TransferMinFunds(dst, 250000)
		require.NoError(t, err)
		assert.Same(t, dst, got)
		assert.InDelta(t, 250000.0, src.Balance(), 0.01)
		assert.InDelta(t, 250000.0, dst.Balance(), 0.01)
	})

	t.Run("smallest valid amount", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 0)
		_, err := src.TransferMinFunds(dst, 1)
		require.NoError(t, err)
		assert.InDelta(t, 499999.0, src.Balance(), 0.01)
		assert.InDelta(t, 1.0, dst.Balance(), 0.01)
	})

	t.Run("zero or negative amounts are rejected", func(t *testing.T) {
		t.Parallel()
		for _, amount := range []float64{0, -50000} {
			src, dst := newPair(t, 500000, 0)
			_, err := src.TransferMinFunds(dst, amount)
			assert.ErrorIs(t, err, account.ErrInsufficientFunds)
		}
	})

	t.Run("largest valid amount leaves source just above the floor", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 0)
		_, err := src.TransferMinFunds(dst, 499998)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, src.Balance(), 0.01)
		assert.InDelta(t, 499998.0, dst.Balance(), 0.01)
	})

	t.Run("amount leaving source exactly at the floor is rejected", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 0)
		_, err := src.TransferMinFunds(dst, 499999)
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
	})

	t.Run("amount crossing the floor is rejected", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 0)
		_, err := src.TransferMinFunds(dst, 500000)
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
	})

	t.Run("failure mutates neither account", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 300000)
		_, err := src.TransferMinFunds(dst, 499999)
		require.ErrorIs(t, err, account.ErrInsufficientFunds)

		assert.InDelta(t, 500000.0, src.Balance(), 0.01)
		assert.InDelta(t, 300000.0, dst.Balance(), 0.01)
		assert.Empty(t, src.Transactions())
		assert.Empty(t, dst.Transactions())
	})

	t.Run("destination with an existing balance accumulates", func(t *testing.T) {
		t.Parallel()
		src, dst := newPair(t, 500000, 300000)
		_, err := src.TransferMinFunds(dst, 200000)
		require.NoError(t, err)
		assert.InDelta(t, 300000.0, src.Balance(), 0.01)
		assert.InDelta(t, 500000.0, dst.Balance(), 0.01)
	})

	t.Run("table of combinations", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			srcInit, amount, wantDst float64
		}{
			{100000, 50000, 50000},
			{250000, 100000, 100000},
			{500000, 250000, 250000},
		}
		for _, tc := range cases {
			src, dst := newPair(t, tc.srcInit, 0)
			_, err := src.TransferMinFunds(dst, tc.amount)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantDst, dst.Balance(), 0.01)
			assert.Greater(t, src.Balance(), src.MinBalance())
		}
	})
}
