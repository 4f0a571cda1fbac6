package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/api/metrics"
	apimiddleware "github.com/demobank/banking-api/internal/api/middleware"
	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

const sessionLifetime = time.Hour

// UserHandler handles registration, authentication and profile requests.
type UserHandler struct {
	auth      ports.AuthService
	users     ports.UserService
	jwtSecret string
}

func NewUserHandler(auth ports.AuthService, users ports.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{auth: auth, users: users, jwtSecret: jwtSecret}
}

// Signup handles POST /user/signup.
//
// @Summary      Register a new customer
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Customer details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Signup successful"})
}

// Signin handles POST /user/signin. On success the signed session token is
// set as an http-only cookie; the body carries only the customer id.
func (h *UserHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SigninsTotal.WithLabelValues("failed").Inc()
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, signinResponse{ID: result.CustomerID})
}

// Logout handles GET /user/logout. The server-side session is revoked on a
// best-effort basis: a missing or stale cookie still clears and returns 200.
func (h *UserHandler) Logout(c echo.Context) error {
	if sid := h.sessionFromCookie(c); sid != "" {
		if err := h.auth.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Profile handles GET /user/getUser/:customer_id.
func (h *UserHandler) Profile(c echo.Context) error {
	customerID, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}

	profile, err := h.users.Profile(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Status: "success",
		Data: profileData{
			User:         profile.User,
			Accounts:     profile.Accounts,
			Transactions: profile.Transactions,
		},
	})
}

// List handles GET /user/getUser.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Status:  "success",
		Results: len(users),
		Data:    usersData{Users: users},
	})
}

// sessionFromCookie extracts the session id claim from the cookie token. An
// expired token still yields its session id so logout can revoke it, but a
// token that fails signature verification yields nothing: only the key holder
// may name a session for revocation.
func (h *UserHandler) sessionFromCookie(c echo.Context) string {
	cookie, err := c.Cookie(apimiddleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil && !errors.Is(err, jwt.ErrTokenExpired) {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}
