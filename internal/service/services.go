package service

import (
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	VerificationService VerificationService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:         NewUserService(storages.UserRepository, logger),
		VerificationService: NewVerificationService(storages.VerificationTokenRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}
