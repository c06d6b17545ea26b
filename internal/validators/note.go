package validators

import (
	"context"

	"github.com/MKhiriev/note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a request.
	FieldUserID = "user_id"

	// FieldContent targets the note text; its word count must be within
	// [models.MinNoteWords, models.MaxNoteWords].
	FieldContent = "content"

	// FieldNoteID targets the identifier of an existing note.
	FieldNoteID = "note_id"

	// FieldSkip targets the list window offset.
	FieldSkip = "skip"

	// FieldLimit targets the list window size.
	FieldLimit = "limit"
)

// NoteValidator checks note payloads and list/delete requests.
type NoteValidator struct{}

// NewNoteValidator returns a [Validator] for note models.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.ListNotesRequest:
		return v.validateListRequest(value, fields...)
	case *models.ListNotesRequest:
		return v.validateListRequest(*value, fields...)

	case models.DeleteNoteRequest:
		return v.validateDeleteRequest(value, fields...)
	case *models.DeleteNoteRequest:
		return v.validateDeleteRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldContent:
			words := models.CountWords(note.Content)
			if words < models.MinNoteWords || words > models.MaxNoteWords {
				return &ContentLengthError{Words: words}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateListRequest(req models.ListNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldSkip:
			if req.Skip < 0 {
				return ErrInvalidSkip
			}
		case FieldLimit:
			if req.Limit < 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDeleteRequest(req models.DeleteNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNoteID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if req.NoteID <= 0 {
				return ErrInvalidNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
