package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

type stubAccountService struct {
	openFn     func(ctx context.Context, input ports.OpenAccountInput) (int64, error)
	listFn     func(ctx context.Context, customerID int64) ([]domain.Account, error)
	depositFn  func(ctx context.Context, accountID, amount int64) error
	withdrawFn func(ctx context.Context, accountID, amount int64) error
	transferFn func(ctx context.Context, input ports.TransferInput) error
}

func (s *stubAccountService) Open(ctx context.Context, input ports.OpenAccountInput) (int64, error) {
	return s.openFn(ctx, input)
}

func (s *stubAccountService) List(ctx context.Context, customerID int64) ([]domain.Account, error) {
	return s.listFn(ctx, customerID)
}

func (s *stubAccountService) Deposit(ctx context.Context, accountID, amount int64) error {
	return s.depositFn(ctx, accountID, amount)
}

func (s *stubAccountService) Withdraw(ctx context.Context, accountID, amount int64) error {
	return s.withdrawFn(ctx, accountID, amount)
}

func (s *stubAccountService) Transfer(ctx context.Context, input ports.TransferInput) error {
	return s.transferFn(ctx, input)
}

func TestAccountHandler_Open_Success(t *testing.T) {
	stub := &stubAccountService{
		openFn: func(_ context.Context, input ports.OpenAccountInput) (int64, error) {
			if input.CustomerID != 1 || input.AccountType != domain.TypeSavings || input.Balance != 2000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return 42, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/account/openAccount",
		`{"customer_id":1,"account_type":"savings","balance":2000}`)
	c.Set("customer_id", int64(1))
	c.Set("role", domain.RoleCustomer)

	if err := h.Open(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accountId"] != float64(42) {
		t.Fatalf("expected accountId 42, got %v", resp["accountId"])
	}
}

func TestAccountHandler_Open_OtherCustomerForbidden(t *testing.T) {
	stub := &stubAccountService{
		openFn: func(context.Context, ports.OpenAccountInput) (int64, error) {
			t.Fatalf("should not be called")
			return 0, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/account/openAccount",
		`{"customer_id":2,"account_type":"savings","balance":2000}`)
	c.Set("customer_id", int64(1))
	c.Set("role", domain.RoleCustomer)

	err := h.Open(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 error, got %v", err)
	}
}

func TestAccountHandler_Open_AdminMayOpenForAnyone(t *testing.T) {
	stub := &stubAccountService{
		openFn: func(context.Context, ports.OpenAccountInput) (int64, error) {
			return 7, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/account/openAccount",
		`{"customer_id":2,"account_type":"current","balance":5000}`)
	c.Set("customer_id", int64(1))
	c.Set("role", domain.RoleAdmin)

	if err := h.Open(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_Open_InvalidType(t *testing.T) {
	stub := &stubAccountService{
		openFn: func(context.Context, ports.OpenAccountInput) (int64, error) {
			t.Fatalf("should not be called")
			return 0, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/account/openAccount",
		`{"customer_id":1,"account_type":"checking","balance":2000}`)

	err := h.Open(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAccountHandler_List_Empty(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(_ context.Context, customerID int64) ([]domain.Account, error) {
			if customerID != 5 {
				t.Fatalf("unexpected customer id: %d", customerID)
			}
			return []domain.Account{}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/account/getAccount/5", "")
	c.SetParamNames("customerId")
	c.SetParamValues("5")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["results"] != float64(0) {
		t.Fatalf("expected zero results, got %v", resp["results"])
	}
	data := resp["data"].(map[string]any)
	if _, ok := data["accounts"].([]any); !ok {
		t.Fatalf("accounts must serialize as an array, got %v", data["accounts"])
	}
}

func TestAccountHandler_Deposit_Success(t *testing.T) {
	stub := &stubAccountService{
		depositFn: func(_ context.Context, accountID, amount int64) error {
			if accountID != 3 || amount != 500 {
				t.Fatalf("unexpected args: %d %d", accountID, amount)
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/account/deposit/3", `{"amount":500}`)
	c.SetParamNames("accountId")
	c.SetParamValues("3")

	if err := h.Deposit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_Withdraw_InsufficientFunds(t *testing.T) {
	stub := &stubAccountService{
		withdrawFn: func(context.Context, int64, int64) error {
			return domain.NewOperationError("insufficient funds")
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/account/withdraw/3", `{"amount":99999}`)
	c.SetParamNames("accountId")
	c.SetParamValues("3")

	err := h.Withdraw(c)
	var op *domain.OperationError
	if !errors.As(err, &op) {
		t.Fatalf("expected OperationError, got %v", err)
	}
}

func TestAccountHandler_Withdraw_BadAccountID(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodPost, "/account/withdraw/abc", `{"amount":100}`)
	c.SetParamNames("accountId")
	c.SetParamValues("abc")

	err := h.Withdraw(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAccountHandler_Transfer_Success(t *testing.T) {
	stub := &stubAccountService{
		transferFn: func(_ context.Context, input ports.TransferInput) error {
			if input.AccountID != 3 || input.Amount != 250 || input.Recipient != "#9" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/account/transfer/3",
		`{"amount":250,"recipientAccount":"#9"}`)
	c.SetParamNames("accountId")
	c.SetParamValues("3")

	if err := h.Transfer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_Transfer_MissingRecipient(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodPost, "/account/transfer/3", `{"amount":250}`)
	c.SetParamNames("accountId")
	c.SetParamValues("3")

	err := h.Transfer(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
