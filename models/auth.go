package models

import "net/http"

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// RegistrationDetails is collected by the register form. It is never sent to
// the backend.
type RegistrationDetails struct {
	FullName string `json:"fullName" validate:"min=2"`
	Phone    string `json:"phone" validate:"phone"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// AuthData is the account payload of a successful login.
type AuthData struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// AuthResponse is the 2xx body of POST /auth/login. StatusCode is the
// business-level outcome and may differ from the HTTP status.
type AuthResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Data       AuthData `json:"data"`
}

// Succeeded reports whether the embedded status marks a successful login.
func (r *AuthResponse) Succeeded() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}
