package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-access/internal/client"
	"github.com/MKhiriev/go-config-access/internal/config"
	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("confctl", logLevel())
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(cfg, buildInfo(), os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "confctl:", err)
		if errors.Is(err, client.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// logLevel reads CONFCTL_LOG_LEVEL, defaulting to warn so that command
// output is not interleaved with debug noise.
func logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(os.Getenv("CONFCTL_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
