package user

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password.
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if userRec.Status == StatusSuspended {
		return nil, ErrSuspended
	}

	token, err := s.tokens.GenerateToken(userRec.ID, userRec.Email)
	if err != nil {
		s.logger.Error("AuthenticateUser: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.mu.Lock()
	if acc, ok := s.accounts[userRec.Email]; ok {
		acc.LastLogin = time.Now()
	}
	s.mu.Unlock()

	return &AuthResponse{
		ID:          userRec.ID,
		FullName:    userRec.FullName,
		Email:       userRec.Email,
		AccessToken: token,
	}, nil
}
