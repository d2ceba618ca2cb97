package main

import (
	"context"
	"fmt"

	"github.com/jdcruz/rbi-registry/internal/config"
	httpHandler "github.com/jdcruz/rbi-registry/internal/handler/http"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/psoc"
	"github.com/jdcruz/rbi-registry/internal/server"
	"github.com/jdcruz/rbi-registry/internal/service"
	"github.com/jdcruz/rbi-registry/internal/store"
	"github.com/jdcruz/rbi-registry/internal/workers"
	"github.com/jdcruz/rbi-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	// PSOC connectivity is optional: standalone barangay installs run
	// without the occupation check entirely.
	var occupations service.OccupationChecker
	var catalog *psoc.Client
	if cfg.PSOC.BaseURL != "" {
		catalog, err = psoc.NewClient(cfg.PSOC, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating PSOC client")
		}
		occupations = catalog
	}

	services := service.NewServices(storages, cfg, occupations, log)

	handler := httpHandler.NewHandler(services, models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)

	var background *workers.Workers
	if catalog != nil {
		background = workers.NewWorkers(
			workers.NewCatalogRefresher(catalog, cfg.Workers.CatalogRefreshInterval, log),
		)
	}

	srv, err := server.NewServer(handler, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDatabase(ctx context.Context, cfg config.Storage, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg, log)
	default:
		return store.NewConnectPostgres(ctx, cfg, log)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
