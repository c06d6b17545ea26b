package http

import (
	"time"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/internal/metrics"
	"github.com/MKhiriev/note-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
