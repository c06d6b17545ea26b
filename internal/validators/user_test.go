package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/note-keeper/models"
)

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		req       models.RegisterRequest
		wantField string
		wantRule  string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Email: "a@x.com", Password: "pw123456", FullName: "A"},
		},
		{
			name: "valid without full name",
			req:  models.RegisterRequest{Email: "a@x.com", Password: "pw1234"},
		},
		{
			name:      "missing email",
			req:       models.RegisterRequest{Password: "pw123456"},
			wantField: "email",
			wantRule:  "required",
		},
		{
			name:      "bad email",
			req:       models.RegisterRequest{Email: "not-an-email", Password: "pw123456"},
			wantField: "email",
			wantRule:  "email",
		},
		{
			name:      "short password",
			req:       models.RegisterRequest{Email: "a@x.com", Password: "12345"},
			wantField: "password",
			wantRule:  "min",
		},
		{
			name:      "long password",
			req:       models.RegisterRequest{Email: "a@x.com", Password: strings.Repeat("p", 73)},
			wantField: "password",
			wantRule:  "max",
		},
		{
			name:      "long full name",
			req:       models.RegisterRequest{Email: "a@x.com", Password: "pw123456", FullName: strings.Repeat("n", 256)},
			wantField: "full_name",
			wantRule:  "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr), "got %v", err)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.Equal(t, tt.wantRule, fieldErr.Rule)
			assert.NotEmpty(t, fieldErr.Detail())
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.LoginRequest{Email: "a@x.com", Password: "x"}))

	var fieldErr *FieldError
	err := v.Validate(ctx, models.LoginRequest{Email: "a@x.com"})
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "password", fieldErr.Field)
	assert.Equal(t, "Field 'password' is required", fieldErr.Detail())
}

func TestUserValidator_PartialFields(t *testing.T) {
	v := NewUserValidator()

	// password is too short but only email is checked
	err := v.Validate(context.Background(), models.RegisterRequest{Email: "a@x.com", Password: "1"}, "email")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.RegisterRequest{Email: "a@x.com", Password: "1"}, "password")
	assert.Error(t, err)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), models.Note{}), ErrUnsupportedType)
}

func TestFieldError_Detail(t *testing.T) {
	assert.Equal(t, "Field 'email' must be a valid email address", (&FieldError{Field: "email", Rule: "email"}).Detail())
	assert.Equal(t, "Field 'password' must be at least 6 characters long", (&FieldError{Field: "password", Rule: "min", Param: "6"}).Detail())
	assert.Equal(t, "Field 'x' is invalid", (&FieldError{Field: "x", Rule: "uuid"}).Detail())
}
