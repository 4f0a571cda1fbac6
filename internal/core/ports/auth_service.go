package ports

import "context"

// SignupInput carries a new customer registration.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// SigninResult is returned on successful authentication. Token is the signed
// session JWT the transport layer places in the cookie.
type SigninResult struct {
	CustomerID int64
	Role       string
	Token      string
	SessionID  string
}

// AuthService implements signup, signin and logout.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (int64, error)
	Signin(ctx context.Context, email, password string) (*SigninResult, error)
	// Logout revokes the server-side session; unknown sessions are a no-op.
	Logout(ctx context.Context, sessionID string) error
}
