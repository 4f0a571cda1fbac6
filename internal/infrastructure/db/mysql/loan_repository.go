package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demobank/banking-api/internal/core/domain"
)

// LoanRepository maps loan operations onto the loan stored procedures and
// the loans table.
type LoanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Apply(ctx context.Context, accountID int64, amount float64) error {
	if _, err := r.db.ExecContext(ctx, "CALL apply_loan(?, ?)", accountID, amount); err != nil {
		return fmt.Errorf("apply loan: %w", translateError(err))
	}
	return nil
}

func (r *LoanRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Loan, error) {
	return r.list(ctx, `
		SELECT id, account_id, amount, status, created_at, started_at
		FROM loans
		WHERE account_id = ?
		ORDER BY id`, accountID)
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]domain.Loan, error) {
	return r.list(ctx, `
		SELECT id, account_id, amount, status, created_at, started_at
		FROM loans
		ORDER BY id`)
}

func (r *LoanRepository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		var started sql.NullTime
		if err := rows.Scan(&l.ID, &l.AccountID, &l.Amount, &l.Status, &l.CreatedAt, &started); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		if started.Valid {
			l.StartedAt = &started.Time
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// Approve transitions the loan to active via approve_loan. The procedure
// signals when the loan does not exist or is not pending.
func (r *LoanRepository) Approve(ctx context.Context, loanID int64) error {
	if _, err := r.db.ExecContext(ctx, "CALL approve_loan(?)", loanID); err != nil {
		return fmt.Errorf("approve loan: %w", translateError(err))
	}
	return nil
}
