package http

import (
	"time"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/service"
	"github.com/MKhiriev/go-food-keeper/internal/utils"
)

// compressionLevel is the gzip level of compressed responses.
const compressionLevel = 5

// idGenerator mints trace ids.
type idGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	requestTimeout    time.Duration
	rateLimitRequests int
	rateLimitWindow   time.Duration

	traceIDs idGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		requestTimeout:    cfg.RequestTimeout,
		rateLimitRequests: cfg.RateLimitRequests,
		rateLimitWindow:   cfg.RateLimitWindow,
		traceIDs:          utils.NewUUIDGenerator(),
		logger:            logger,
	}
}
