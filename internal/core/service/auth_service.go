package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/ports"
)

// AuthService implements signup, signin and logout. Sessions are recorded
// server-side so logout actually revokes the token instead of only clearing
// the cookie.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	jwtSecret  string
	adminEmail string
	tokenTTL   time.Duration
}

// NewAuthService wires the auth flows. adminEmail may be empty; when set, the
// customer signing up with that email is created with the admin role.
func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret, adminEmail string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		tokenTTL:   tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (int64, error) {
	if input.FirstName == "" || input.Email == "" || input.Password == "" {
		return 0, domain.ErrValidation
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Existence pre-check; the unique index on email is the backstop.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return 0, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	role := domain.RoleCustomer
	if s.adminEmail != "" && email == s.adminEmail {
		role = domain.RoleAdmin
	}

	customer := &domain.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: string(hash),
		Role:         role,
	}
	return s.users.Create(ctx, customer)
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.SigninResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email and bad password are indistinguishable to callers.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID, s.tokenTTL); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	return &ports.SigninResult{
		CustomerID: user.ID,
		Role:       user.Role,
		Token:      token,
		SessionID:  sessionID,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *AuthService) generateToken(user *domain.Customer, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"sid":  sessionID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
