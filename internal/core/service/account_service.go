package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

// AccountService exposes account lifecycle and money movement. All balance
// arithmetic lives in the stored procedures; this layer validates input and
// translates results.
type AccountService struct {
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, logger: logger}
}

// Open validates the request and invokes the open_account procedure. The
// minimum-balance check here is the authoritative one; the procedure repeats
// it as a backstop.
func (s *AccountService) Open(ctx context.Context, input ports.OpenAccountInput) (int64, error) {
	if input.CustomerID <= 0 || !domain.ValidType(input.AccountType) {
		return 0, domain.ErrValidation
	}
	if input.Balance < domain.MinOpeningBalance {
		return 0, domain.NewOperationError("opening balance must be at least 1000")
	}

	id, err := s.accounts.Open(ctx, input.CustomerID, input.AccountType, input.Balance)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		// The procedure returned no account id: it failed without raising.
		return 0, domain.NewOperationError("failed to open account")
	}

	s.logger.Info().
		Int64("customer_id", input.CustomerID).
		Int64("account_id", id).
		Str("account_type", string(input.AccountType)).
		Msg("account opened")
	return id, nil
}

// List returns all accounts owned by the customer; an empty list is a valid
// result, not an error.
func (s *AccountService) List(ctx context.Context, customerID int64) ([]domain.Account, error) {
	accounts, err := s.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *AccountService) Deposit(ctx context.Context, accountID, amount int64) error {
	if accountID <= 0 || amount <= 0 {
		return domain.ErrValidation
	}
	if err := s.accounts.Deposit(ctx, accountID, amount); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Int64("amount", amount).Msg("deposit completed")
	return nil
}

func (s *AccountService) Withdraw(ctx context.Context, accountID, amount int64) error {
	if accountID <= 0 || amount <= 0 {
		return domain.ErrValidation
	}
	if err := s.accounts.Withdraw(ctx, accountID, amount); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Int64("amount", amount).Msg("withdrawal completed")
	return nil
}

// Transfer moves amount from the source account to the recipient. The
// recipient identifier may carry a leading '#' sigil, which is stripped
// before parsing.
func (s *AccountService) Transfer(ctx context.Context, input ports.TransferInput) error {
	if input.AccountID <= 0 || input.Amount <= 0 {
		return domain.ErrValidation
	}

	recipient, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(input.Recipient), "#"), 10, 64)
	if err != nil || recipient <= 0 {
		return domain.ErrValidation
	}
	if recipient == input.AccountID {
		return domain.NewOperationError("cannot transfer to the same account")
	}

	if err := s.accounts.Transfer(ctx, input.AccountID, recipient, input.Amount); err != nil {
		return err
	}

	s.logger.Info().
		Int64("from", input.AccountID).
		Int64("to", recipient).
		Int64("amount", input.Amount).
		Msg("transfer completed")
	return nil
}
