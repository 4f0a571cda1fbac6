package handler

import "github.com/demobank/banking-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for operations that return no data.
type messageResponse struct {
	Message string `json:"message"`
}

type openAccountRequest struct {
	CustomerID  int64   `json:"customer_id"  validate:"required,gt=0"`
	AccountType string  `json:"account_type" validate:"required,oneof=savings current"`
	Balance     float64 `json:"balance"      validate:"required,gt=0"`
}

type openAccountResponse struct {
	AccountID int64 `json:"accountId"`
}

type amountRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type transferRequest struct {
	Amount    int64  `json:"amount"           validate:"required,gt=0"`
	Recipient string `json:"recipientAccount" validate:"required"`
}

// accountsData wraps the account list the way the frontend consumes it.
type accountsData struct {
	Accounts []domain.Account `json:"accounts"`
}

type listAccountsResponse struct {
	Status  string       `json:"status"`
	Results int          `json:"results"`
	Data    accountsData `json:"data"`
}
