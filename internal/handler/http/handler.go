package http

import (
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/service"
	"github.com/jdcruz/rbi-registry/models"
)

type Handler struct {
	services *service.Services

	// buildInfo is served on the version endpoint; filled from ldflags.
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
