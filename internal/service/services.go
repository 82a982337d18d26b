package service

import (
	"fmt"

	"github.com/MKhiriev/go-food-keeper/internal/adapter"
	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	FoodService     FoodService
	ResolverService ResolverService
}

func NewServices(storages *store.Storages, source adapter.FoodSource, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	serviceLogger := logger.WithComponent("service")

	return &Services{
		AuthService:     NewAuthService(cfg.App, serviceLogger),
		AppInfoService:  appInfo,
		FoodService:     NewFoodValidationService().Wrap(NewFoodService(storages.FoodRepository, cfg.Services, serviceLogger)),
		ResolverService: NewResolverService(storages.FoodRepository, source, cfg.Services, serviceLogger),
	}, nil
}
