package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/demobank/banking-api/internal/core/domain"
)

const customerColumns = "id, first_name, last_name, email, phone, address, password, role, created_at"

// UserRepository persists customers. Creation runs through the signup_user
// procedure; reads are parameterized selects.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create invokes signup_user, which inserts the row and selects the new id.
func (r *UserRepository) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, "CALL signup_user(?, ?, ?, ?, ?, ?, ?)",
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.PasswordHash, c.Role).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", translateError(err))
	}
	return id, nil
}

// PromoteToAdmin grants the admin role to the customer registered under
// email. It reports whether a row changed; an unknown email is not an error
// so the caller can run this unconditionally at startup.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE customers SET role = ? WHERE email = ? AND role <> ?",
		domain.RoleAdmin, email, domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("promote admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("promote admin: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = ?", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.findOne(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = ?", id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	var lastName, phone, address sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&c.ID, &c.FirstName, &lastName, &c.Email, &phone, &address, &c.PasswordHash, &c.Role, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	c.LastName = lastName.String
	c.Phone = phone.String
	c.Address = address.String
	return &c, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var lastName, phone, address sql.NullString
		if err := rows.Scan(&c.ID, &c.FirstName, &lastName, &c.Email, &phone, &address, &c.PasswordHash, &c.Role, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		c.LastName = lastName.String
		c.Phone = phone.String
		c.Address = address.String
		users = append(users, c)
	}
	return users, rows.Err()
}
