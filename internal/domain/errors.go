package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrValidation        = errors.New("validation failed")

	// ErrAuthenticationFailed is the parent of every authentication failure kind.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrInvalidCredentials       = &AuthError{Code: "INVALID_CREDENTIALS", Message: "Invalid Credentials, try again."}
	ErrUserInactive             = &AuthError{Code: "ACCOUNT_DISABLED", Message: "Account disabled, contact admin"}
	ErrEmailNotVerified         = &AuthError{Code: "EMAIL_NOT_VERIFIED", Message: "Email Not verified"}
	ErrSocialAuthTokenInvalid   = &AuthError{Code: "INVALID_SOCIAL_TOKEN", Message: "Invalid Token. Try again"}
	ErrVerificationTokenExpired = &AuthError{Code: "ACTIVATION_EXPIRED", Message: "Activation Expired"}
	ErrVerificationTokenInvalid = &AuthError{Code: "INVALID_VERIFICATION_TOKEN", Message: "Invalid token"}
)

// AuthError is a client-facing authentication failure. Each kind is a
// distinct value so callers can tell them apart with errors.Is.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Is makes every AuthError match ErrAuthenticationFailed.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// ProviderMismatchError is returned when an email is already registered
// through a different provider than the one used for this login.
type ProviderMismatchError struct {
	Provider AuthProvider
}

func (e *ProviderMismatchError) Error() string {
	return fmt.Sprintf("You previously signed up with %s. Please continue with that.", e.Provider)
}

func (e *ProviderMismatchError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// IsAuthenticationFailure reports whether err is any authentication failure kind.
func IsAuthenticationFailure(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

// ValidationError carries per-field messages for malformed input.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		for f, m := range e.Fields {
			return fmt.Sprintf("%s: %s", f, m)
		}
	}
	return fmt.Sprintf("%d fields failed validation", len(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
