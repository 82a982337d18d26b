package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService fixes the reported version at startup. A blank version
// is a misconfiguration.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}
