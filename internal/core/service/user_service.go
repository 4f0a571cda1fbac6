package service

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

// UserService serves profile retrieval and the customer listing.
type UserService struct {
	users        ports.UserRepository
	accounts     ports.AccountRepository
	transactions ports.TransactionRepository
}

func NewUserService(users ports.UserRepository, accounts ports.AccountRepository, transactions ports.TransactionRepository) *UserService {
	return &UserService{users: users, accounts: accounts, transactions: transactions}
}

// Profile joins the customer with their accounts and the transactions
// touching those accounts. A customer with no accounts gets empty slices.
func (s *UserService) Profile(ctx context.Context, customerID int64) (*ports.ProfileResult, error) {
	user, err := s.users.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	transactions := []domain.Transaction{}
	if len(accounts) > 0 {
		transactions, err = s.transactions.ListByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		if transactions == nil {
			transactions = []domain.Transaction{}
		}
	}

	return &ports.ProfileResult{
		User:         *user,
		Accounts:     accounts,
		Transactions: transactions,
	}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.Customer, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.Customer{}
	}
	return users, nil
}
