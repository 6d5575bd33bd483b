package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain"
	"authapi/internal/validation"
)

type sample struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,username"`
	Password string  `json:"password" validate:"required,password,bcryptbytes"`
	Phone    *string `json:"phone_number" validate:"omitempty,phone"`
}

func strPtr(s string) *string { return &s }

func TestStruct_Valid(t *testing.T) {
	err := validation.Struct(sample{
		Email:    "a@x.com",
		Username: "alice42",
		Password: "password123",
		Phone:    strPtr("+14155552671"),
	})
	assert.NoError(t, err)
}

func TestStruct_UsernameNonAlphanumeric(t *testing.T) {
	for _, username := range []string{"alice_42", "al ice", "alice!", "ali-ce", "äpfel", "a.b"} {
		t.Run(username, func(t *testing.T) {
			err := validation.Struct(sample{Email: "a@x.com", Username: username, Password: "password123"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Username must contain only alphanumeric characters", verr.Fields["username"])
		})
	}
}

func TestStruct_PasswordLengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"too short", 7, true},
		{"min", 8, false},
		{"max", 68, false},
		{"too long", 69, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(sample{Email: "a@x.com", Username: "alice", Password: strings.Repeat("p", tt.length)})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, "password")
		})
	}
}

func TestStruct_BadPhone(t *testing.T) {
	err := validation.Struct(sample{Email: "a@x.com", Username: "alice", Password: "password123", Phone: strPtr("12-34")})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "phone_number")
}

func TestStruct_ReportsEveryField(t *testing.T) {
	err := validation.Struct(sample{})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "is required", verr.Fields["email"])
}

func TestStruct_PasswordByteLimit(t *testing.T) {
	// 40 characters, 80 bytes: inside the character bounds, over bcrypt's limit.
	err := validation.Struct(sample{Email: "a@x.com", Username: "alice", Password: strings.Repeat("é", 40)})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be at most 72 bytes long", verr.Fields["password"])

	assert.NoError(t, validation.Struct(sample{Email: "a@x.com", Username: "alice", Password: strings.Repeat("é", 36)}))
}

func TestStruct_PhoneFormats(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+999999999", true},
		{"123456789012345", true},
		{"12345678", false},
		{"+12345678901234567", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := validation.Struct(sample{Email: "a@x.com", Username: "alice", Password: "password123", Phone: strPtr(tt.phone)})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, "phone_number")
		})
	}
}
