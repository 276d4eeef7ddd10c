package auth

import (
	"strings"
	"testing"

	"homezy/i18n"
	"homezy/models"

	"github.com/stretchr/testify/assert"
)

func newTestValidator(lang string) *Validator {
	return NewValidator(i18n.NewLocalizer(lang))
}

func TestValidateLoginEmail(t *testing.T) {
	v := newTestValidator("en")

	for _, email := range []string{"", "plainaddress", "@missing-local.org", "guest@", "guest homezy@x.vn"} {
		t.Run(email, func(t *testing.T) {
			errs := v.ValidateLogin(models.LoginCredentials{Email: email, Password: "secret1"})
			assert.Equal(t, ValidationErrors{"email": "Invalid email address"}, errs)
		})
	}

	assert.Nil(t, v.ValidateLogin(models.LoginCredentials{Email: "guest@homezy.vn", Password: "secret1"}))
}

func TestValidatePasswordLength(t *testing.T) {
	v := newTestValidator("en")

	for _, pw := range []string{"", "a", "12345"} {
		errs := v.ValidateLogin(models.LoginCredentials{Email: "guest@homezy.vn", Password: pw})
		assert.Equal(t, "Password must be at least 6 characters", errs["password"], "login %q", pw)

		errs = v.ValidateRegistration(models.RegistrationDetails{
			FullName: "An Nguyen",
			Phone:    "0901234567",
			Email:    "guest@homezy.vn",
			Password: pw,
		})
		assert.Equal(t, "Password must be at least 6 characters", errs["password"], "register %q", pw)
	}

	assert.Nil(t, v.ValidateLogin(models.LoginCredentials{Email: "guest@homezy.vn", Password: "123456"}))
}

func TestValidateRegistrationPhone(t *testing.T) {
	v := newTestValidator("en")
	base := models.RegistrationDetails{FullName: "An", Email: "an@homezy.vn", Password: "secret1"}

	tests := []struct {
		phone string
		ok    bool
	}{
		{"0901234567", true},
		{"09012345678", true},
		{"090123456", false},
		{"090123456789", false},
		{"+84901234567", false},
		{"090-123-4567", false},
		{"", false},
		{"０９０１２３４５６７", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			d := base
			d.Phone = tt.phone
			errs := v.ValidateRegistration(d)
			if tt.ok {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, "Phone number must have 10-11 digits", errs["phone"])
		})
	}
}

func TestValidateRegistrationReportsEveryField(t *testing.T) {
	v := newTestValidator("vi")

	errs := v.ValidateRegistration(models.RegistrationDetails{FullName: "A"})

	assert.Equal(t, ValidationErrors{
		"fullName": "Họ tên phải có ít nhất 2 ký tự",
		"phone":    "Số điện thoại phải có 10-11 chữ số",
		"email":    "Email không hợp lệ",
		"password": "Mật khẩu phải có ít nhất 6 ký tự",
	}, errs)
	assert.True(t, strings.HasPrefix(errs.Error(), "validation failed: email: "))
}

func TestValidationFollowsActiveLanguage(t *testing.T) {
	loc := i18n.NewLocalizer("en")
	v := NewValidator(loc)
	creds := models.LoginCredentials{Email: "nope", Password: "secret1"}

	assert.Equal(t, "Invalid email address", v.ValidateLogin(creds)["email"])
	loc.ChangeLanguage("vi")
	assert.Equal(t, "Email không hợp lệ", v.ValidateLogin(creds)["email"])
}
