package notification_test

import (
	"testing"

	"github.com/fintech-ro/bancar/pkg/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsInvocationOrder(t *testing.T) {
	t.Parallel()

	rec := &notification.Recorder{}
	rec.LogActivity("acc-1", "Deposit of 60000")
	rec.SendEmail("owner@example.com", "Depunere mare", "A deposit of 60000")
	rec.SendSms("+40712345678", "A withdrawal of 7000")

	calls := rec.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, notification.OpActivity, calls[0].Op)
	assert.Equal(t, notification.OpEmail, calls[1].Op)
	assert.Equal(t, notification.OpSms, calls[2].Op)
	assert.Equal(t, "acc-1", calls[0].AccountID)
	assert.Equal(t, "owner@example.com", calls[1].Recipient)
	assert.Equal(t, "+40712345678", calls[2].Phone)
}

func TestRecorderFiltersAndCounts(t *testing.T) {
	t.Parallel()

	rec := &notification.Recorder{}
	rec.LogActivity("a", "one")
	rec.LogActivity("a", "two")
	rec.SendSms("x", "y")

	assert.Equal(t, 2, rec.Count(notification.OpActivity))
	assert.Equal(t, 1, rec.Count(notification.OpSms))
	assert.Zero(t, rec.Count(notification.OpEmail))

	logs := rec.CallsTo(notification.OpActivity)
	require.Len(t, logs, 2)
	assert.Equal(t, "one", logs[0].Message)
	assert.Equal(t, "two", logs[1].Message)
}

func TestRecorderReset(t *testing.T) {
	t.Parallel()

	rec := &notification.Recorder{}
	rec.SendEmail("r", "s", "b")
	rec.Reset()
	assert.Empty(t, rec.Calls())
}

func TestRecorderCallsReturnsCopy(t *testing.T) {
	t.Parallel()

	rec := &notification.Recorder{}
	rec.SendSms("x", "y")
	calls := rec.Calls()
	calls[0].Phone = "mutated"
	assert.Equal(t, "x", rec.Calls()[0].Phone)
}
