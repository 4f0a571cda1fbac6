package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubSessionStore struct {
	sessions map[string]int64
}

func (s *stubSessionStore) Create(_ context.Context, sessionID string, customerID int64, _ time.Duration) error {
	s.sessions[sessionID] = customerID
	return nil
}

func (s *stubSessionStore) Lookup(_ context.Context, sessionID string) (int64, error) {
	id, ok := s.sessions[sessionID]
	if !ok {
		return 0, domain.ErrSessionInvalid
	}
	return id, nil
}

func (s *stubSessionStore) Revoke(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func signToken(t *testing.T, secret string, customerID int64, sid, role string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  customerID,
		"sid":  sid,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func runSession(t *testing.T, store *stubSessionStore, cookie string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/account/getAccount/1", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Session(testSecret, store)(next)(c)
	return rec, c, err
}

func TestSession_ValidToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{"sid-1": 7}}
	token := signToken(t, testSecret, 7, "sid-1", domain.RoleCustomer, time.Hour)

	rec, c, err := runSession(t, store, token)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := c.Get("customer_id").(int64); got != 7 {
		t.Fatalf("expected customer_id 7 in context, got %v", c.Get("customer_id"))
	}
	if got, _ := c.Get("role").(string); got != domain.RoleCustomer {
		t.Fatalf("expected role in context, got %v", c.Get("role"))
	}
}

func TestSession_MissingToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{}}

	_, _, err := runSession(t, store, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSession_RevokedSession(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{}}
	token := signToken(t, testSecret, 7, "sid-1", domain.RoleCustomer, time.Hour)

	_, _, err := runSession(t, store, token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session, got %v", err)
	}
}

func TestSession_WrongSecret(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{"sid-1": 7}}
	token := signToken(t, "other-secret", 7, "sid-1", domain.RoleCustomer, time.Hour)

	_, _, err := runSession(t, store, token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %v", err)
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{"sid-1": 7}}
	token := signToken(t, testSecret, 7, "sid-1", domain.RoleCustomer, -time.Minute)

	_, _, err := runSession(t, store, token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestSession_SessionOwnerMismatch(t *testing.T) {
	// Session sid-1 belongs to customer 9, but the token claims customer 7.
	store := &stubSessionStore{sessions: map[string]int64{"sid-1": 9}}
	token := signToken(t, testSecret, 7, "sid-1", domain.RoleCustomer, time.Hour)

	_, _, err := runSession(t, store, token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for owner mismatch, got %v", err)
	}
}

func TestSession_BearerHeaderFallback(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]int64{"sid-1": 7}}
	token := signToken(t, testSecret, 7, "sid-1", domain.RoleCustomer, time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/account/getAccount/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := Session(testSecret, store)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
