package domain

import "time"

// TransactionKind labels the three kinds of money movement.
type TransactionKind string

const (
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
	KindTransfer TransactionKind = "transfer"
)

// Transaction is an immutable record written by the money-movement
// procedures. FromAccount is zero for deposits, ToAccount is zero for
// withdrawals.
type Transaction struct {
	ID          int64           `json:"id"`
	Kind        TransactionKind `json:"kind"`
	FromAccount int64           `json:"from_account,omitempty"`
	ToAccount   int64           `json:"to_account,omitempty"`
	Amount      float64         `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
