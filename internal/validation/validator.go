// Package validation wraps go-playground/validator with the tags and
// messages used by request DTOs. Struct returns nil or a
// *domain.ValidationError keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"authapi/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return isPhoneNumber(fl.Field().String())
	})
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	_ = v.RegisterValidation("bcryptbytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= domain.MaxPasswordBytes
	})
	v.RegisterAlias("username", "alphanum")
	v.RegisterAlias("password", fmt.Sprintf("min=%d,max=%d", domain.MinPasswordLength, domain.MaxPasswordLength))
	return v
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = message(fe)
		}
		return &domain.ValidationError{Fields: out}
	}
	return &domain.ValidationError{Fields: map[string]string{"payload": "invalid payload"}}
}

func isPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "username", "alphanum":
		return "Username must contain only alphanumeric characters"
	case "password":
		return fmt.Sprintf("must be between %d and %d characters long", domain.MinPasswordLength, domain.MaxPasswordLength)
	case "bcryptbytes":
		return fmt.Sprintf("must be at most %d bytes long", domain.MaxPasswordBytes)
	case "phone":
		return "must be entered in the format '+999999999', up to 15 digits allowed"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "is invalid"
	}
}
