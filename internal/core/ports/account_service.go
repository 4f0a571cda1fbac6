package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// OpenAccountInput carries all data needed to open an account.
type OpenAccountInput struct {
	CustomerID  int64
	AccountType domain.AccountType
	Balance     float64
}

// TransferInput carries a transfer order. Recipient is the destination
// account identifier as typed by the user, optionally prefixed with '#'.
type TransferInput struct {
	AccountID int64
	Amount    int64
	Recipient string
}

// AccountService defines use-case operations for accounts and money movement.
type AccountService interface {
	Open(ctx context.Context, input OpenAccountInput) (int64, error)
	List(ctx context.Context, customerID int64) ([]domain.Account, error)
	Deposit(ctx context.Context, accountID, amount int64) error
	Withdraw(ctx context.Context, accountID, amount int64) error
	Transfer(ctx context.Context, input TransferInput) error
}
