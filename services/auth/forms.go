package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"homezy/i18n"
	"homezy/models"
	"homezy/services/notification"

	"go.uber.org/zap"
)

// RegistrationDelay is how long the register form stays busy after a valid
// submission.
const RegistrationDelay = time.Second

// LoginForm validates credentials, calls the login endpoint and turns the
// outcome into a notification. While a submission is running the form
// reports Submitting() and rejects new ones.
type LoginForm struct {
	client     Authenticator
	validator  *Validator
	notifier   notification.Notifier
	localizer  Localizer
	logger     *zap.Logger
	submitting atomic.Bool
}

func NewLoginForm(client Authenticator, validator *Validator, notifier notification.Notifier, localizer Localizer, logger *zap.Logger) *LoginForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginForm{
		client:    client,
		validator: validator,
		notifier:  notifier,
		localizer: localizer,
		logger:    logger,
	}
}

// Submitting reports whether the submit control should be disabled.
func (f *LoginForm) Submitting() bool { return f.submitting.Load() }

// Submit runs one login attempt. Field problems come back as
// ValidationErrors without any request being made. Transport failures are
// notified and returned; business-level failures are notified and the
// response is returned with a nil error.
func (f *LoginForm) Submit(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	if errs := f.validator.ValidateLogin(creds); errs != nil {
		return nil, errs
	}

	resp, err := f.client.Login(ctx, creds)
	if err != nil {
		f.logger.Error("Login Error", zap.Error(err))
		f.notifier.Error(f.failureMessage(err))
		return nil, err
	}
	if resp == nil {
		msg := f.localizer.T(i18n.KeyLoginError)
		f.logger.Error("Login returned no response")
		f.notifier.Error(msg)
		return nil, &GenericAuthError{Message: msg}
	}

	if resp.Succeeded() {
		f.notifier.Success(resp.Message)
	} else {
		f.notifier.Error(resp.Message)
	}
	return resp, nil
}

func (f *LoginForm) failureMessage(err error) string {
	var authErr *GenericAuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return f.localizer.T(i18n.KeyLoginError)
}

// RegisterForm validates registration details. There is no registration
// endpoint yet: a valid submission is logged and holds the form busy for
// the configured delay.
type RegisterForm struct {
	validator  *Validator
	logger     *zap.Logger
	delay      time.Duration
	submitting atomic.Bool
}

func NewRegisterForm(validator *Validator, logger *zap.Logger, delay time.Duration) *RegisterForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay < 0 {
		delay = 0
	}
	return &RegisterForm{validator: validator, logger: logger, delay: delay}
}

func (f *RegisterForm) Submitting() bool { return f.submitting.Load() }

func (f *RegisterForm) Submit(ctx context.Context, details models.RegistrationDetails) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	if errs := f.validator.ValidateRegistration(details); errs != nil {
		return errs
	}

	// TODO: post to the registration endpoint once the backend publishes one.
	f.logger.Info("Register Data",
		zap.String("fullName", details.FullName),
		zap.String("phone", details.Phone),
		zap.String("email", details.Email),
	)

	if f.delay == 0 {
		return nil
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
