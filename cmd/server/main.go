package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-food-keeper/internal/adapter"
	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/handler"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-food-keeper/internal/server"
	"github.com/MKhiriev/go-food-keeper/internal/service"
	"github.com/MKhiriev/go-food-keeper/internal/store"
	"github.com/MKhiriev/go-food-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	startupTimeout = 30 * time.Second

	// devVersion is reported when neither config nor linker set a version.
	devVersion = "dev"
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	_ = buildInfo.Write(os.Stdout)

	log := logger.NewLogger("go-food-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	if cfg.App.Version == "" {
		cfg.App.Version = devVersion
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	off := cfg.Adapter.OpenFoodFacts
	foodSource := adapter.NewOpenFoodFactsClient(
		off,
		ratelimit.NewSlidingWindow(off.BarcodeRequestsPerWindow, off.Window),
		ratelimit.NewSlidingWindow(off.SearchRequestsPerWindow, off.Window),
		log,
	)

	services, err := service.NewServices(storages, foodSource, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
