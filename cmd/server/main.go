package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/handler"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/server"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/internal/store"
	"github.com/MKhiriev/go-user-list/internal/utils"
	"github.com/MKhiriev/go-user-list/internal/validators"
	"github.com/MKhiriev/go-user-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("users-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnectDB(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	if _, err = store.SeedUsers(ctx, storages.UserRepository, cfg.Storage.SeedFile, utils.NewUUIDGenerator(), validators.NewUserValidator(), log); err != nil {
		log.Fatal().Err(err).Msg("error seeding users")
	}

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Transport, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
