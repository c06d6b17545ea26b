package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/store"
	"github.com/MKhiriev/note-keeper/models"
)

// noteService implements [NoteService] on top of a [store.NoteRepository].
// Input is expected to be validated by the wrapping [NoteValidationService].
type noteService struct {
	noteRepository store.NoteRepository

	// maxNotes is the per-user quota.
	maxNotes int

	now func() time.Time

	logger *logger.Logger
}

// NewNoteService constructs the undecorated note service.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		maxNotes:       models.MaxNotesPerUser,
		now:            time.Now,
		logger:         logger,
	}
}

// ListNotes returns the requested window of the owner's notes.
func (s *noteService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// CreateNote stores a new note for note.UserID. The word count and creation
// time are always derived here, never taken from the caller.
func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	created, err := s.noteRepository.CreateNote(ctx, models.NewNote(note.UserID, note.Content, s.now().UTC()), s.maxNotes)
	switch {
	case errors.Is(err, store.ErrNoteQuotaExceeded):
		log.Debug().Int64("user_id", note.UserID).Msg("note quota exceeded")
		return models.Note{}, ErrQuotaExceeded
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Int64("user_id", note.UserID).Msg("note owner disappeared")
		return models.Note{}, ErrUnauthorized
	case err != nil:
		log.Err(err).Int64("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	log.Debug().Int64("user_id", created.UserID).Int64("note_id", created.ID).Msg("note created")
	return created, nil
}

// DeleteNote removes a note owned by req.UserID. Notes of other users are
// reported exactly like missing ones.
func (s *noteService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	err := s.noteRepository.DeleteNote(ctx, req.UserID, req.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", req.UserID).
			Int64("note_id", req.NoteID).
			Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
