package validation

import (
	"net/url"
	"strings"
	"unicode"
)

// LoginInput is the normalized login form.
type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

// RegisterInput is the normalized registration form.
type RegisterInput struct {
	Email    string
	Password string
}

// Login validates the login form: a valid email, a password of at least six
// characters, and an optional remember flag coerced to a boolean.
func Login(form url.Values) (LoginInput, Errors) {
	errs := Errors{}

	email := field(form, "email")
	if email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(email) {
		errs.add("email", "Provide a valid email")
	}

	password := form.Get("password")
	if password == "" {
		errs.add("password", "Password is required")
	} else if len(password) < 6 {
		errs.add("password", "Password must be at least 6 characters long")
	}

	remember := form.Get("remember") == "on" || form.Get("remember") == "true"

	return LoginInput{Email: email, Password: password, Remember: remember}, errs
}

// Register validates the registration form. It extends the login shape with
// a stronger password rule and a confirmation field that must match the
// password; a mismatch is reported against confirmPassword.
func Register(form url.Values) (RegisterInput, Errors) {
	errs := Errors{}

	email := field(form, "email")
	if email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(email) {
		errs.add("email", "Provide a valid email")
	}

	password := form.Get("password")
	switch {
	case password == "":
		errs.add("password", "Password is required")
	case len(password) < 8:
		errs.add("password", "Password must be at least 8 characters long")
	case !strings.ContainsFunc(password, unicode.IsUpper):
		errs.add("password", "Include at least one uppercase letter")
	case !strings.ContainsFunc(password, unicode.IsLower):
		errs.add("password", "Include at least one lowercase letter")
	case !strings.ContainsFunc(password, unicode.IsDigit):
		errs.add("password", "Include at least one number")
	}

	confirm := form.Get("confirmPassword")
	if confirm == "" {
		errs.add("confirmPassword", "Confirm your password")
	} else if confirm != password {
		errs.add("confirmPassword", "Passwords must match")
	}

	return RegisterInput{Email: email, Password: password}, errs
}

// Reset validates the password-reset form, which carries only an email.
func Reset(form url.Values) (string, Errors) {
	errs := Errors{}

	email := field(form, "email")
	if email == "" {
		errs.add("email", "Email is required")
	} else if !validEmail(email) {
		errs.add("email", "Provide a valid email")
	}

	return email, errs
}
