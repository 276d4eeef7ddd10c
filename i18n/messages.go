package i18n

const (
	KeyEmailInvalid       = "auth.validation.email_invalid"
	KeyPasswordMin        = "auth.validation.password_min"
	KeyFullNameMin        = "auth.validation.fullname_min"
	KeyPhoneInvalid       = "auth.validation.phone_invalid"
	KeyLoginError         = "auth.login.error"
	KeyLoginSuccess       = "auth.login.success"
	KeyInvalidCredentials = "auth.login.invalid_credentials"
	KeySuspended          = "auth.login.suspended"
	KeyBadRequest         = "auth.login.bad_request"
	KeyRateLimited        = "auth.login.rate_limited"
	KeySubmitInFlight     = "auth.general.submitting"
)

var catalog = map[Locale]map[string]string{
	English: {
		KeyEmailInvalid:       "Invalid email address",
		KeyPasswordMin:        "Password must be at least %d characters",
		KeyFullNameMin:        "Full name must be at least %d characters",
		KeyPhoneInvalid:       "Phone number must have 10-11 digits",
		KeyLoginError:         "Login failed",
		KeyLoginSuccess:       "Signed in successfully",
		KeyInvalidCredentials: "Invalid email or password",
		KeySuspended:          "This account has been suspended",
		KeyBadRequest:         "Invalid request",
		KeyRateLimited:        "Too many attempts, please try again later",
		KeySubmitInFlight:     "Please wait...",
	},
	Vietnamese: {
		KeyEmailInvalid:       "Email không hợp lệ",
		KeyPasswordMin:        "Mật khẩu phải có ít nhất %d ký tự",
		KeyFullNameMin:        "Họ tên phải có ít nhất %d ký tự",
		KeyPhoneInvalid:       "Số điện thoại phải có 10-11 chữ số",
		KeyLoginError:         "Đăng nhập thất bại",
		KeyLoginSuccess:       "Đăng nhập thành công",
		KeyInvalidCredentials: "Email hoặc mật khẩu không đúng",
		KeySuspended:          "Tài khoản đã bị khóa",
		KeyBadRequest:         "Yêu cầu không hợp lệ",
		KeyRateLimited:        "Bạn thao tác quá nhanh, vui lòng thử lại sau",
		KeySubmitInFlight:     "Vui lòng chờ...",
	},
}
