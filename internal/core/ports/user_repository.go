package ports

import (
	"context"

	"github.com/demobank/banking-api/internal/core/domain"
)

// UserRepository defines persistence operations for customers. Creation goes
// through the signup_user stored procedure; reads are parameterized selects.
type UserRepository interface {
	Create(ctx context.Context, c *domain.Customer) (int64, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
