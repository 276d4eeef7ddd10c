package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"homezy/i18n"
	"homezy/models"
	"homezy/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoginForm(t *testing.T, srv *loginServer) (*LoginForm, *notification.Toaster) {
	t.Helper()
	loc := i18n.NewLocalizer("en")
	toaster := notification.NewToaster(time.Minute)
	form := NewLoginForm(NewClient(srv.URL, loc), NewValidator(loc), toaster, loc, nil)
	return form, toaster
}

func TestLoginFormSuccessNotifiesOnce(t *testing.T) {
	srv := newLoginServer(t, http.StatusOK, `{"statusCode":200,"message":"ok","data":{"id":"u1"}}`)
	form, toaster := newTestLoginForm(t, srv)

	resp, err := form.Submit(context.Background(), goodCreds)
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.Data.ID)

	toasts := toaster.History()
	require.Len(t, toasts, 1)
	assert.Equal(t, notification.KindSuccess, toasts[0].Kind)
	assert.Equal(t, "ok", toasts[0].Message)
	assert.False(t, form.Submitting())
}

func TestLoginFormUnauthorizedNotifiesServerText(t *testing.T) {
	srv := newLoginServer(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	form, toaster := newTestLoginForm(t, srv)

	_, err := form.Submit(context.Background(), goodCreds)
	require.Error(t, err)

	toasts := toaster.History()
	require.Len(t, toasts, 1)
	assert.Equal(t, notification.KindError, toasts[0].Kind)
	assert.Equal(t, "Invalid credentials", toasts[0].Message)
}

func TestLoginFormBusinessFailure(t *testing.T) {
	srv := newLoginServer(t, http.StatusOK, `{"statusCode":403,"message":"Account suspended"}`)
	form, toaster := newTestLoginForm(t, srv)

	resp, err := form.Submit(context.Background(), goodCreds)
	require.NoError(t, err)
	assert.False(t, resp.Succeeded())

	toasts := toaster.History()
	require.Len(t, toasts, 1)
	assert.Equal(t, notification.KindError, toasts[0].Kind)
	assert.Equal(t, "Account suspended", toasts[0].Message)
}

func TestLoginFormInvalidInputMakesNoRequest(t *testing.T) {
	srv := newLoginServer(t, http.StatusOK, `{"statusCode":200,"message":"ok"}`)
	form, toaster := newTestLoginForm(t, srv)

	_, err := form.Submit(context.Background(), models.LoginCredentials{Email: "not-an-email", Password: "123"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Invalid email address", verrs["email"])
	assert.Equal(t, "Password must be at least 6 characters", verrs["password"])
	assert.Zero(t, srv.calls.Load())
	assert.Empty(t, toaster.History())
}

func TestLoginFormTransportFailureUsesLocalizedFallback(t *testing.T) {
	loc := i18n.NewLocalizer("vi")
	toaster := notification.NewToaster(time.Minute)
	failing := doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: connection refused")
	})
	form := NewLoginForm(NewClient("http://127.0.0.1:1", loc, WithHTTPClient(failing)), NewValidator(loc), toaster, loc, nil)

	_, err := form.Submit(context.Background(), goodCreds)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	toasts := toaster.History()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Đăng nhập thất bại", toasts[0].Message)
}

type emptyAuthenticator struct{}

func (emptyAuthenticator) Login(context.Context, models.LoginCredentials) (*models.AuthResponse, error) {
	return nil, nil
}

func TestLoginFormNilResponseNotifiesFallback(t *testing.T) {
	loc := i18n.NewLocalizer("en")
	toaster := notification.NewToaster(time.Minute)
	form := NewLoginForm(emptyAuthenticator{}, NewValidator(loc), toaster, loc, nil)

	var (
		resp *models.AuthResponse
		err  error
	)
	require.NotPanics(t, func() {
		resp, err = form.Submit(context.Background(), goodCreds)
	})
	assert.Nil(t, resp)

	var authErr *GenericAuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)

	toasts := toaster.History()
	require.Len(t, toasts, 1)
	assert.Equal(t, notification.KindError, toasts[0].Kind)
	assert.Equal(t, "Login failed", toasts[0].Message)
	assert.False(t, form.Submitting())
}

type gatedAuthenticator struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gatedAuthenticator) Login(ctx context.Context, _ models.LoginCredentials) (*models.AuthResponse, error) {
	g.entered <- struct{}{}
	<-g.release
	return &models.AuthResponse{StatusCode: http.StatusOK, Message: "ok"}, nil
}

func TestLoginFormRejectsConcurrentSubmit(t *testing.T) {
	loc := i18n.NewLocalizer("en")
	toaster := notification.NewToaster(time.Minute)
	gate := &gatedAuthenticator{entered: make(chan struct{}), release: make(chan struct{})}
	form := NewLoginForm(gate, NewValidator(loc), toaster, loc, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := form.Submit(context.Background(), goodCreds)
		assert.NoError(t, err)
	}()

	<-gate.entered
	assert.True(t, form.Submitting())

	_, err := form.Submit(context.Background(), goodCreds)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(gate.release)
	wg.Wait()

	assert.False(t, form.Submitting())
	assert.Len(t, toaster.History(), 1)
}

func TestRegisterFormValidatesAndWaits(t *testing.T) {
	v := NewValidator(i18n.NewLocalizer("en"))
	form := NewRegisterForm(v, nil, 20*time.Millisecond)

	err := form.Submit(context.Background(), models.RegistrationDetails{FullName: "An", Phone: "123", Email: "an@homezy.vn", Password: "secret1"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{"phone": "Phone number must have 10-11 digits"}, verrs)

	start := time.Now()
	err = form.Submit(context.Background(), models.RegistrationDetails{FullName: "An", Phone: "0901234567", Email: "an@homezy.vn", Password: "secret1"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.False(t, form.Submitting())
}

func TestRegisterFormHonoursCancellation(t *testing.T) {
	form := NewRegisterForm(NewValidator(i18n.NewLocalizer("en")), nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := form.Submit(ctx, models.RegistrationDetails{FullName: "An", Phone: "0901234567", Email: "an@homezy.vn", Password: "secret1"})
	assert.ErrorIs(t, err, context.Canceled)
}
