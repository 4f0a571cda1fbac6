package handler

import "github.com/demobank/banking-api/internal/core/domain"

type applyLoanRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type approveLoanRequest struct {
	LoanID int64 `json:"loanId" validate:"required,gt=0"`
}

type loansData struct {
	Loans []domain.Loan `json:"loans"`
}

type listLoansResponse struct {
	Status  string    `json:"status"`
	Results int       `json:"results"`
	Data    loansData `json:"data"`
}

type approveLoanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
