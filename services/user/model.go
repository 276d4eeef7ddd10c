package user

import "time"

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Account is a user known to the development API.
type Account struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin,omitempty"`
}

// AuthResponse is what a successful sign-in yields.
type AuthResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}
