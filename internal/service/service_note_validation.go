package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/note-keeper/internal/validators"
	"github.com/MKhiriev/note-keeper/models"
)

// NoteValidationService validates every request before handing it to the
// wrapped [NoteService].
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListNotes(ctx, req)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note, validators.FieldUserID, validators.FieldContent); err != nil {
		var lengthErr *validators.ContentLengthError
		if errors.As(err, &lengthErr) {
			return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrInvalidNoteID) {
			// no note can have such an id
			return ErrNoteNotFound
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteNote(ctx, req)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}
