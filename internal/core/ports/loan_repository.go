package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// LoanRepository defines persistence operations for loans.
type LoanRepository interface {
	Apply(ctx context.Context, accountID int64, amount float64) error
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Loan, error)
	ListAll(ctx context.Context) ([]domain.Loan, error)
	Approve(ctx context.Context, loanID int64) error
}
