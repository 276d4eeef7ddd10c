package auth

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"homezy/i18n"
	"homezy/models"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)

// Every rule on a field reports the same message.
var fieldMessages = map[string]string{
	"email":    i18n.KeyEmailInvalid,
	"password": i18n.KeyPasswordMin,
	"fullName": i18n.KeyFullNameMin,
	"phone":    i18n.KeyPhoneInvalid,
}

// Localizer is the slice of the locale service the auth components use.
type Localizer interface {
	Language() i18n.Locale
	T(key string, args ...any) string
	TFor(loc i18n.Locale, key string, args ...any) string
}

// Validator checks the login and registration forms.
type Validator struct {
	validate  *validator.Validate
	localizer Localizer
}

func NewValidator(localizer Localizer) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic("auth: register phone rule: " + err.Error())
	}
	return &Validator{validate: v, localizer: localizer}
}

// ValidateLogin returns nil when the credentials are acceptable.
func (v *Validator) ValidateLogin(c models.LoginCredentials) ValidationErrors {
	return v.check(c)
}

// ValidateRegistration returns nil when the details are acceptable.
func (v *Validator) ValidateRegistration(d models.RegistrationDetails) ValidationErrors {
	return v.check(d)
}

func (v *Validator) check(s any) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{"": err.Error()}
	}
	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = v.message(fe)
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	key, ok := fieldMessages[fe.Field()]
	if !ok {
		return fe.Error()
	}
	if fe.Tag() == "min" {
		n, _ := strconv.Atoi(fe.Param())
		return v.localizer.T(key, n)
	}
	return v.localizer.T(key)
}
