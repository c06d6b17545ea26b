package models

// RegisterRequest carries the registration payload.
// Validation tags are evaluated by the validators package.
type RegisterRequest struct {
	// Email is normalized before it is validated and stored.
	Email string `json:"email" validate:"required,email,max=320"`

	// Password is the plaintext password. bcrypt only reads the first 72 bytes,
	// so longer passwords are rejected instead of being silently truncated.
	Password string `json:"password" validate:"required,min=6,max=72"`

	// FullName is optional.
	FullName string `json:"full_name" validate:"max=255"`
}

// LoginRequest carries login credentials. Over HTTP it arrives either as the
// OAuth2 password form (username, password) or as JSON.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateNoteRequest carries the content of a new note.
type CreateNoteRequest struct {
	Content string `json:"content"`
}

// ListNotesRequest describes one window over the caller's notes.
type ListNotesRequest struct {
	// UserID is taken from the authenticated identity, never from the client.
	UserID int64 `json:"-"`

	// Skip is the number of notes to pass over.
	Skip int64 `json:"skip"`

	// Limit is the maximum number of notes returned.
	Limit int64 `json:"limit"`
}

// DeleteNoteRequest identifies a note to delete on behalf of its owner.
type DeleteNoteRequest struct {
	UserID int64 `json:"-"`
	NoteID int64 `json:"note_id"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
