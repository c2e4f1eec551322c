package http

import (
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}
