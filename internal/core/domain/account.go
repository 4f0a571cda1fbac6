package domain

import "time"

// AccountType distinguishes the two supported account kinds.
type AccountType string

const (
	TypeSavings AccountType = "savings"
	TypeCurrent AccountType = "current"
)

// MinOpeningBalance is the smallest balance an account may be opened with.
const MinOpeningBalance = 1000

// Account belongs to exactly one customer. Its balance is only mutated by
// the money-movement stored procedures; this layer never deletes accounts.
type Account struct {
	ID         int64       `json:"account_id"`
	CustomerID int64       `json:"customer_id"`
	Type       AccountType `json:"account_type"`
	Balance    float64     `json:"balance"`
	CreatedAt  time.Time   `json:"created_at"`
}

// ValidType reports whether t is one of the supported account types.
func ValidType(t AccountType) bool {
	return t == TypeSavings || t == TypeCurrent
}
