package user

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var PasswordHashCost = bcrypt.DefaultCost

// DefaultUserService keeps accounts in memory, keyed by lower-cased email.
type DefaultUserService struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	tokens   TokenGenerator
	logger   *zap.Logger
}

func NewDefaultUserService(tokens TokenGenerator, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{
		accounts: make(map[string]*Account),
		tokens:   tokens,
		logger:   logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) AddAccount(fullName, email, phone, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return nil, err
	}
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return nil, ErrEmailTaken
	}
	acc := &Account{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        key,
		Phone:        phone,
		PasswordHash: string(hash),
		Status:       StatusActive,
		CreatedAt:    time.Now(),
	}
	s.accounts[key] = acc
	out := *acc
	return &out, nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[normalizeEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	out := *acc
	return &out, nil
}

func (s *DefaultUserService) SuspendUser(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[normalizeEmail(email)]
	if !ok {
		return ErrInvalidCredentials
	}
	acc.Status = StatusSuspended
	return nil
}
