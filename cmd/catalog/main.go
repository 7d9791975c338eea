package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/handler"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/server"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// The catalog deployment serves the book routes only; user accounts are not
// mounted.
func main() {
	printBuildInfo()

	log := logger.NewLogger("book-keeper-catalog")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewCatalogServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewPingWorker(storages.DB, cfg.Workers.PingInterval, log),
	)
	backgroundWorkers.Run(ctx)

	srv.RunServer()
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
