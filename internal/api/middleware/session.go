package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/core/ports"
)

// SessionCookie is the cookie the signed session token travels in.
const SessionCookie = "token"

// Session validates the signed session token and injects its claims into the
// request context. The token is read from the session cookie, falling back to
// a bearer Authorization header. Beyond the signature check, the session id
// claim must still resolve in the server-side store: a revoked or expired
// session fails with 401 even when the JWT itself is intact.
func Session(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(float64)
			sid, _ := claims["sid"].(string)
			role, _ := claims["role"].(string)
			if sub <= 0 || sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity claims")
			}

			customerID, err := sessions.Lookup(c.Request().Context(), sid)
			if err != nil || customerID != int64(sub) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session invalid or expired")
			}

			c.Set("customer_id", customerID)
			c.Set("session_id", sid)
			c.Set("role", role)

			return next(c)
		}
	}
}

// tokenFromRequest prefers the session cookie and falls back to a bearer
// Authorization header.
func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
