package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSuspended          = errors.New("account suspended")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserService defines the account operations the development API needs.
type UserService interface {
	// AddAccount stores a new account with a bcrypt hash of password.
	AddAccount(fullName, email, phone, password string) (*Account, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// SuspendUser blocks future sign-ins.
	SuspendUser(email string) error
	GetUserByEmail(email string) (*Account, error)
}

// TokenGenerator issues access tokens.
type TokenGenerator interface {
	GenerateToken(subject, email string) (string, error)
}
