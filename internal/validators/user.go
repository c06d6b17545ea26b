package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/note-keeper/models"
)

// UserValidator checks registration and login payloads against their
// `validate` struct tags.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator returns a [Validator] for account payloads. Field names in
// reported errors are taken from the json tags.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &UserValidator{validate: v}
}

// Validate checks a registration or login payload. When fields are given only
// those JSON fields are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, structFieldNames(obj, fields)...)
	}

	return firstFieldError(err)
}

// structFieldNames maps JSON names to Go field names, which is what
// StructPartial expects.
func structFieldNames(obj any, jsonNames []string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	names := make([]string, 0, len(jsonNames))
	for _, jsonName := range jsonNames {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == jsonName {
				names = append(names, f.Name)
			}
		}
	}
	return names
}

func firstFieldError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}

	return err
}
