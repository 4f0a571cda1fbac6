package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/api/metrics"
	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Open handles POST /account/openAccount.
//
// @Summary      Open a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      openAccountRequest  true  "Account details"
// @Success      200   {object}  openAccountResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /account/openAccount [post]
func (h *AccountHandler) Open(c echo.Context) error {
	var req openAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID, role, err := ctxSession(c)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && customerID != req.CustomerID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot open an account for another customer")
	}

	id, err := h.service.Open(c.Request().Context(), ports.OpenAccountInput{
		CustomerID:  req.CustomerID,
		AccountType: domain.AccountType(req.AccountType),
		Balance:     req.Balance,
	})
	if err != nil {
		return err
	}

	metrics.AccountsOpenedTotal.WithLabelValues(req.AccountType).Inc()
	return c.JSON(http.StatusOK, openAccountResponse{AccountID: id})
}

// List handles GET /account/getAccount/:customerId. An empty account list is
// a valid result, not an error.
//
// @Summary      List a customer's accounts
// @Tags         accounts
// @Produce      json
// @Param        customerId  path      int  true  "Customer id"
// @Success      200         {object}  listAccountsResponse
// @Failure      500         {object}  errorResponse
// @Router       /account/getAccount/{customerId} [get]
func (h *AccountHandler) List(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}

	accounts, err := h.service.List(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAccountsResponse{
		Status:  "success",
		Results: len(accounts),
		Data:    accountsData{Accounts: accounts},
	})
}

// Withdraw handles POST /account/withdraw/:accountId.
func (h *AccountHandler) Withdraw(c echo.Context) error {
	accountID, req, err := bindAmount(c)
	if err != nil {
		return err
	}

	if err := h.service.Withdraw(c.Request().Context(), accountID, req.Amount); err != nil {
		countMovement("withdraw", err)
		return err
	}

	metrics.MoneyMovementsTotal.WithLabelValues("withdraw", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Withdraw successful"})
}

// Deposit handles POST /account/deposit/:accountId.
func (h *AccountHandler) Deposit(c echo.Context) error {
	accountID, req, err := bindAmount(c)
	if err != nil {
		return err
	}

	if err := h.service.Deposit(c.Request().Context(), accountID, req.Amount); err != nil {
		countMovement("deposit", err)
		return err
	}

	metrics.MoneyMovementsTotal.WithLabelValues("deposit", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deposit successful"})
}

// Transfer handles POST /account/transfer/:accountId. The recipient account
// may carry a leading '#' sigil, which the service strips.
func (h *AccountHandler) Transfer(c echo.Context) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}

	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.Transfer(c.Request().Context(), ports.TransferInput{
		AccountID: accountID,
		Amount:    req.Amount,
		Recipient: req.Recipient,
	})
	if err != nil {
		countMovement("transfer", err)
		return err
	}

	metrics.MoneyMovementsTotal.WithLabelValues("transfer", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Transfer successful"})
}

// bindAmount parses the account id path parameter and the amount body shared
// by withdraw and deposit.
func bindAmount(c echo.Context) (int64, *amountRequest, error) {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return 0, nil, err
	}

	var req amountRequest
	if err := c.Bind(&req); err != nil {
		return 0, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return 0, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return accountID, &req, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// countMovement records a rejected money movement; unexpected errors are not
// counted as business rejections.
func countMovement(kind string, err error) {
	var op *domain.OperationError
	if errors.As(err, &op) || errors.Is(err, domain.ErrValidation) {
		metrics.MoneyMovementsTotal.WithLabelValues(kind, "rejected").Inc()
	}
}
