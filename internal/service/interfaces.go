package service

import (
	"context"
	"time"

	"github.com/MKhiriev/note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// AuthService is the Access Guard: it registers accounts, exchanges
// credentials for tokens and resolves tokens back into users.
type AuthService interface {
	// RegisterUser validates req, hashes the password and stores the account.
	// A taken email yields ErrDuplicateEmail.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login checks credentials and issues an access token. Every credential
	// failure yields ErrUnauthorized.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// Authenticate resolves a bearer token into the active user it names.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// EnsureSeedAccount creates the configured seed account with its sample
	// notes when seeding is enabled and the account does not exist yet.
	EnsureSeedAccount(ctx context.Context) error
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after ttl.
	Issue(subject string, ttl time.Duration) (models.Token, error)

	// Validate checks signature and expiry and returns the token subject.
	// Failures are ErrTokenMalformed, ErrTokenInvalidSignature or
	// ErrTokenExpired.
	Validate(tokenString string) (string, error)
}

// NoteService manages the notes of one authenticated owner at a time.
type NoteService interface {
	ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// AppInfoService describes the running application.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}
