package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrLoanNotFound       = errors.New("loan not found")
	ErrSessionInvalid     = errors.New("session invalid or expired")
	ErrValidation         = errors.New("invalid input")
)

// OperationError carries a business-rule failure signaled by a stored
// procedure (insufficient funds, unknown recipient, ...). Its message comes
// from the procedure's SIGNAL and is safe to show to clients; raw driver
// errors never take this form.
type OperationError struct {
	Message string
}

func (e *OperationError) Error() string { return e.Message }

// NewOperationError wraps a procedure-signaled failure message.
func NewOperationError(msg string) *OperationError {
	return &OperationError{Message: msg}
}
