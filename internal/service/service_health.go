package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/store"
)

type healthService struct {
	checker store.HealthChecker
	logger  *logger.Logger
}

// NewHealthService reports health by pinging the database.
func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database ping failed")
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
