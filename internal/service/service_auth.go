package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/crypto"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/store"
	"github.com/MKhiriev/note-keeper/internal/validators"
	"github.com/MKhiriev/note-keeper/models"
)

// seedNotes are created for the seed account together with the account itself.
var seedNotes = []string{
	"Welcome to Note Keeper! This is your first note.",
	"You can create up to 10 notes, each with a maximum of 50 words.",
	"Click on any note to delete it. Try creating a new note!",
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// resolution using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// noteRepository receives the sample notes of the seed account.
	noteRepository store.NoteRepository

	// transactor makes account creation and seed notes one unit of work.
	transactor store.Transactor

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	// tokens issues and validates access tokens.
	tokens TokenService

	// validator checks registration and login payloads.
	validator validators.Validator

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// seed describes the optional onboarding account.
	seed config.Seed

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storages and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, hasher crypto.PasswordHasher, tokens TokenService, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: storages.UserRepository,
		noteRepository: storages.NoteRepository,
		transactor:     storages.Transactor,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validators.NewUserValidator(),
		tokenTTL:       cfg.App.TokenTTL(),
		seed:           cfg.Seed,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is normalized before validation so registration and login agree
// on one identity. The stored record is returned without the password hash
// ever leaving the server (see [models.User]).
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping a [validators.FieldError] for bad input.
//   - ErrDuplicateEmail if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = models.NormalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    a.now().UTC(),
	}

	var registered models.User
	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var createErr error
		registered, createErr = a.userRepository.CreateUser(ctx, user)
		if createErr != nil {
			return createErr
		}

		if a.isSeedAccount(registered.Email) {
			return a.createSeedNotes(ctx, registered.ID)
		}
		return nil
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", req.Email).Msg("email already registered")
		return models.User{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registered.ID).Msg("user registered")
	return registered, nil
}

// Login authenticates an existing user and issues an access token.
//
// Unknown email, wrong password and inactive account all yield the same
// ErrUnauthorized.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	req.Email = models.NormalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("incomplete credentials")
		return models.Token{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login for unknown email")
		return models.Token{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.Token{}, ErrUnauthorized
	}

	if !user.IsActive {
		log.Debug().Int64("user_id", user.ID).Msg("login for inactive user")
		return models.Token{}, ErrUnauthorized
	}

	token, err := a.tokens.Issue(user.Email, a.tokenTTL)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, err
	}

	return token, nil
}

// Authenticate validates tokenString and loads the user named by its subject.
//
// Returns ErrUnauthorized (wrapping the token error, if any) when the token is
// unusable, the subject no longer exists or the account is inactive. Store
// failures are returned as is.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokens.Validate(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(subject))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("subject", subject).Msg("token subject does not resolve to a user")
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Msg("user search by token subject failed")
		return models.User{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	if !user.IsActive {
		log.Debug().Int64("user_id", user.ID).Msg("token for inactive user")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

// EnsureSeedAccount implements [AuthService].
func (a *authService) EnsureSeedAccount(ctx context.Context) error {
	if !a.seed.Enabled {
		return nil
	}

	log := logger.FromContext(ctx)
	email := models.NormalizeEmail(a.seed.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Debug().Str("email", email).Msg("seed account already exists")
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("seed account lookup failed: %w", err)
	}

	_, err = a.RegisterUser(ctx, models.RegisterRequest{
		Email:    email,
		Password: a.seed.Password,
		FullName: a.seed.FullName,
	})
	if err != nil && !errors.Is(err, ErrDuplicateEmail) {
		return fmt.Errorf("seed account creation failed: %w", err)
	}

	log.Info().Str("email", email).Msg("seed account is ready")
	return nil
}

func (a *authService) isSeedAccount(email string) bool {
	return a.seed.Enabled && email == models.NormalizeEmail(a.seed.Email)
}

func (a *authService) createSeedNotes(ctx context.Context, userID int64) error {
	for _, content := range seedNotes {
		note := models.NewNote(userID, content, a.now().UTC())
		if _, err := a.noteRepository.CreateNote(ctx, note, models.MaxNotesPerUser); err != nil {
			return fmt.Errorf("seed note creation failed: %w", err)
		}
	}
	return nil
}
