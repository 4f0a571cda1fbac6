package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

// LoanService exposes loan application, listing and approval.
type LoanService struct {
	loans  ports.LoanRepository
	logger zerolog.Logger
}

func NewLoanService(loans ports.LoanRepository, logger zerolog.Logger) *LoanService {
	return &LoanService{loans: loans, logger: logger}
}

func (s *LoanService) Apply(ctx context.Context, accountID int64, amount float64) error {
	if accountID <= 0 || amount <= 0 {
		return domain.ErrValidation
	}
	if err := s.loans.Apply(ctx, accountID, amount); err != nil {
		return err
	}
	s.logger.Info().Int64("account_id", accountID).Float64("amount", amount).Msg("loan application recorded")
	return nil
}

func (s *LoanService) ListByAccount(ctx context.Context, accountID int64) ([]domain.Loan, error) {
	loans, err := s.loans.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	return loans, nil
}

func (s *LoanService) ListAll(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	return loans, nil
}

func (s *LoanService) Approve(ctx context.Context, loanID int64) error {
	if loanID <= 0 {
		return domain.ErrValidation
	}
	if err := s.loans.Approve(ctx, loanID); err != nil {
		return err
	}
	s.logger.Info().Int64("loan_id", loanID).Msg("loan approved")
	return nil
}
