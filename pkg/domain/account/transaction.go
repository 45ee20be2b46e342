package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionKind enumerates the kinds of movements an account records.
type TransactionKind int

const (
	// KindDeposit marks funds credited through Deposit.
	KindDeposit TransactionKind = iota
	// KindWithdraw marks funds debited through Withdraw.
	KindWithdraw
	// KindInterest marks interest credited through ApplyInterest.
	KindInterest
	// KindTransferOut marks funds leaving the account through a transfer.
	KindTransferOut
	// KindTransferIn marks funds arriving through a transfer.
	KindTransferIn
)

var kindNames = map[TransactionKind]string{
	KindDeposit:     "deposit",
	KindWithdraw:    "withdraw",
	KindInterest:    "interest",
	KindTransferOut: "transfer-out",
	KindTransferIn:  "transfer-in",
}

func (k TransactionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseTransactionKind maps the wire name of a kind back to its value.
func ParseTransactionKind(name string) (TransactionKind, error) {
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction kind %q", name)
}

// Transaction is an immutable record of a single account movement. Seq is a
// per-account logical clock; history order equals ascending Seq.
type Transaction struct {
	ID      uuid.UUID
	Kind    TransactionKind
	Amount  float64
	Seq     int64
	Created time.Time
}
