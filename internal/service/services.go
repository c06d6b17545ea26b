package service

import (
	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/crypto"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	NoteService    NoteService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(cfg.App, logger)
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	return &Services{
		AuthService:    NewAuthService(storages, hasher, tokenService, cfg, logger),
		TokenService:   tokenService,
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker, logger),
	}, nil
}
