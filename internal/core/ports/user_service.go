package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// ProfileResult joins a customer with their accounts and the transactions
// touching those accounts. Accounts and Transactions are empty (never nil)
// slices when the customer owns nothing yet.
type ProfileResult struct {
	User         domain.Customer
	Accounts     []domain.Account
	Transactions []domain.Transaction
}

// UserService exposes profile retrieval and the unfiltered customer listing.
type UserService interface {
	Profile(ctx context.Context, customerID int64) (*ProfileResult, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
