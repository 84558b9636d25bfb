package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-list/internal/adapter"
	"github.com/MKhiriev/go-user-list/internal/client"
	"github.com/MKhiriev/go-user-list/internal/config"
	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/internal/tui"
	"github.com/MKhiriev/go-user-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, logFile := logger.NewClientLogger("user-list-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting client")

	source, err := adapter.NewConfigSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create config source")
	}
	fetcher := adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
	notifier := tui.NewNotifier(log)

	services, err := service.NewClientServices(cfg.Widget, source, fetcher, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, notifier, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log, logFile)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	// Run closes the log file on exit, so failures go to stderr
	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
	}
}
