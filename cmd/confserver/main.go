package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-access/configuration"
	"github.com/MKhiriev/go-config-access/internal/config"
	handler "github.com/MKhiriev/go-config-access/internal/handler/http"
	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/server"
	"github.com/MKhiriev/go-config-access/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := printBuildInfo()

	log := logger.NewLogger("confserver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("backend", cfg.Backend.URI).
		Str("prefix", cfg.Backend.Prefix).
		Str("address", cfg.Server.HTTPAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	ctx := context.Background()
	conf, err := configuration.GetConfiguration(ctx, cfg.Backend.URI,
		configuration.WithLogger(log.Logger),
		configuration.WithTimeout(cfg.Backend.Timeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening backend")
	}

	if cfg.Backend.Prefix != "" {
		if err = conf.SetPrefix(ctx, cfg.Backend.Prefix); err != nil {
			log.Fatal().Err(err).Msg("error setting prefix")
		}
	}

	version := cfg.App.Version
	if version == "" {
		version = info.BuildVersion()
	}

	h := handler.NewHandler(conf, handler.Settings{
		Version:        version,
		Backend:        backendName(conf),
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err = conf.Close(); err != nil {
		log.Err(err).Msg("error closing backend")
	}
}

// backendName reports the backend kind served, "unknown" if conf does not
// say.
func backendName(conf configuration.Configuration) string {
	if named, ok := conf.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unknown"
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
