package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/core/ports"
)

// LoanHandler handles HTTP requests for loan operations.
type LoanHandler struct {
	service ports.LoanService
}

func NewLoanHandler(service ports.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// Apply handles POST /account/loan/:accountId. The loan starts in pending
// status until an administrator approves it.
func (h *LoanHandler) Apply(c echo.Context) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}

	var req applyLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Apply(c.Request().Context(), accountID, req.Amount); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Loan application submitted"})
}

// ListByAccount handles GET /account/getMyLoans/:accountId and its
// /account/getLoans/:accountId alias.
func (h *LoanHandler) ListByAccount(c echo.Context) error {
	accountID, err := pathID(c, "accountId")
	if err != nil {
		return err
	}

	loans, err := h.service.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listLoansResponse{
		Status:  "success",
		Results: len(loans),
		Data:    loansData{Loans: loans},
	})
}

// ListAll handles GET /account/loans, the administrative view over every loan.
func (h *LoanHandler) ListAll(c echo.Context) error {
	loans, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listLoansResponse{
		Status:  "success",
		Results: len(loans),
		Data:    loansData{Loans: loans},
	})
}

// Approve handles POST /account/approveLoan/:accountId. Only administrators
// reach this handler; the route is guarded by role middleware.
func (h *LoanHandler) Approve(c echo.Context) error {
	if _, err := pathID(c, "accountId"); err != nil {
		return err
	}

	var req approveLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Approve(c.Request().Context(), req.LoanID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, approveLoanResponse{
		Status:  "success",
		Message: "Loan approved",
	})
}
