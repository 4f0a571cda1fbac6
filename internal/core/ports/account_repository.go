package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// AccountRepository maps account operations onto the banking stored
// procedures. The procedures own all balance arithmetic and signal business
// failures; implementations translate those signals into domain errors.
type AccountRepository interface {
	// Open invokes open_account and returns the new account id.
	Open(ctx context.Context, customerID int64, accountType domain.AccountType, balance float64) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	Deposit(ctx context.Context, accountID, amount int64) error
	Withdraw(ctx context.Context, accountID, amount int64) error
	// Transfer debits from and credits to in a single procedure call.
	Transfer(ctx context.Context, from, to, amount int64) error
}

// TransactionRepository reads the immutable transaction log.
type TransactionRepository interface {
	// ListByCustomer returns transactions touching any account owned by the
	// customer, newest first.
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error)
}
