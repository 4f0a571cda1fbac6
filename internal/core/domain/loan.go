package domain

import "time"

// LoanStatus represents the lifecycle state of a loan.
type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanActive    LoanStatus = "active"
	LoanClosed    LoanStatus = "closed"
	LoanDefaulted LoanStatus = "defaulted"
)

// Loan belongs to an account. It is created pending by apply_loan and moved
// to active by approve_loan; no further lifecycle is modeled here.
type Loan struct {
	ID        int64      `json:"id"`
	AccountID int64      `json:"account_id"`
	Amount    float64    `json:"amount"`
	Status    LoanStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}
