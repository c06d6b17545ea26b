package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/note-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrInvalidNoteID = errors.New("invalid note ID")
	ErrInvalidSkip   = errors.New("skip must not be negative")
	ErrInvalidLimit  = errors.New("limit must not be negative")
)

// ContentLengthError reports note content whose word count is out of bounds.
type ContentLengthError struct {
	Words int
}

func (e *ContentLengthError) Error() string {
	return fmt.Sprintf("note content has %d words, allowed %d-%d", e.Words, models.MinNoteWords, models.MaxNoteWords)
}

// Detail returns the client-facing description of the problem.
func (e *ContentLengthError) Detail() string {
	if e.Words < models.MinNoteWords {
		return "Content cannot be empty"
	}
	return fmt.Sprintf("Content exceeds %d words (current: %d)", models.MaxNoteWords, e.Words)
}

// FieldError reports a single struct field that failed a validation rule.
type FieldError struct {
	// Field is the JSON name of the field.
	Field string
	// Rule is the failed validator tag (required, email, min, max).
	Rule string
	// Param is the rule parameter, e.g. "6" for min=6.
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %q failed rule %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("field %q failed rule %s", e.Field, e.Rule)
}

// Detail returns the client-facing description of the problem.
func (e *FieldError) Detail() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("Field '%s' is required", e.Field)
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", e.Field)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters long", e.Field, e.Param)
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s characters long", e.Field, e.Param)
	default:
		return fmt.Sprintf("Field '%s' is invalid", e.Field)
	}
}
