package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session claims injected by the Session middleware
// and fails fast before any service call: a zero customer id means the
// middleware did not run or the token carried no identity.
func ctxSession(c echo.Context) (customerID int64, role string, err error) {
	customerID, _ = c.Get("customer_id").(int64)
	if customerID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return customerID, role, nil
}
