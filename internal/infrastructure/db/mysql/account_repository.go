package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/demobank/banking-api/internal/core/domain"
)

// AccountRepository maps account operations onto the banking stored
// procedures and the accounts table.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Open invokes open_account, which creates the row and selects the new id.
// A procedure run that produces no row means the open failed silently; the
// caller sees id 0.
func (r *AccountRepository) Open(ctx context.Context, customerID int64, accountType domain.AccountType, balance float64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, "CALL open_account(?, ?, ?)", customerID, string(accountType), balance).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("open account: %w", translateError(err))
	}
	return id, nil
}

func (r *AccountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, account_type, balance, created_at
		FROM accounts
		WHERE customer_id = ?
		ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Type, &a.Balance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Deposit(ctx context.Context, accountID, amount int64) error {
	if _, err := r.db.ExecContext(ctx, "CALL deposit_money(?, ?)", accountID, amount); err != nil {
		return fmt.Errorf("deposit: %w", translateError(err))
	}
	return nil
}

func (r *AccountRepository) Withdraw(ctx context.Context, accountID, amount int64) error {
	if _, err := r.db.ExecContext(ctx, "CALL withdraw_money(?, ?)", accountID, amount); err != nil {
		return fmt.Errorf("withdraw: %w", translateError(err))
	}
	return nil
}

func (r *AccountRepository) Transfer(ctx context.Context, from, to, amount int64) error {
	if _, err := r.db.ExecContext(ctx, "CALL transfer_money(?, ?, ?)", from, to, amount); err != nil {
		return fmt.Errorf("transfer: %w", translateError(err))
	}
	return nil
}

// TransactionRepository reads the immutable transaction log.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// ListByCustomer returns transactions touching any account owned by the
// customer, newest first.
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.kind, COALESCE(t.from_account, 0), COALESCE(t.to_account, 0), t.amount, t.created_at
		FROM transactions t
		WHERE t.from_account IN (SELECT id FROM accounts WHERE customer_id = ?)
		   OR t.to_account   IN (SELECT id FROM accounts WHERE customer_id = ?)
		ORDER BY t.id DESC`, customerID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Kind, &t.FromAccount, &t.ToAccount, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
