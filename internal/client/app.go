// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-config-access/configuration"
	"github.com/MKhiriev/go-config-access/internal/app"
	"github.com/MKhiriev/go-config-access/internal/config"
	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/models"
)

// defaultTokenDuration is used by the token command when no duration is
// configured.
const defaultTokenDuration = 24 * time.Hour

// opener returns a ready configuration for one command.
type opener func(ctx context.Context) (configuration.Configuration, error)

// TokenSettings parameterise the token command.
type TokenSettings struct {
	SignKey  string
	Issuer   string
	Duration time.Duration
}

// App runs confctl commands.
type App struct {
	open   opener
	tokens TokenSettings
	info   models.AppBuildInfo
	out    io.Writer
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds an App whose commands operate on the backend named by
// cfg.URI, with cfg.Prefix applied.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, out io.Writer, log *logger.Logger) *App {
	open := func(ctx context.Context) (configuration.Configuration, error) {
		if cfg.URI == "" {
			return nil, ErrNoBackendURI
		}

		conf, err := configuration.GetConfiguration(ctx, cfg.URI,
			configuration.WithLogger(log.Logger),
			configuration.WithTimeout(cfg.Timeout),
		)
		if err != nil {
			return nil, err
		}

		if cfg.Prefix != "" {
			if err = conf.SetPrefix(ctx, cfg.Prefix); err != nil {
				_ = conf.Close()
				return nil, err
			}
		}
		return conf, nil
	}

	tokens := TokenSettings{
		SignKey:  cfg.TokenSignKey,
		Issuer:   cfg.TokenIssuer,
		Duration: cfg.TokenDuration,
	}

	return newApp(open, tokens, info, out, log)
}

func newApp(open opener, tokens TokenSettings, info models.AppBuildInfo, out io.Writer, log *logger.Logger) *App {
	if tokens.Duration <= 0 {
		tokens.Duration = defaultTokenDuration
	}
	return &App{
		open:   open,
		tokens: tokens,
		info:   info,
		out:    out,
		logger: log,
	}
}

// Run executes args[0] with the remaining operands. Without arguments it
// prints the usage text and fails with [ErrUsage].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUsage, app.MsgUnknownCommand, name)
	}
	if len(operands) < cmd.minArgs || len(operands) > cmd.maxArgs {
		return fmt.Errorf("%w: %s: %s, expected: %s %s", ErrUsage, name, app.MsgWrongArguments, name, cmd.usage)
	}

	if !cmd.backend {
		return cmd.run(ctx, a, nil, operands)
	}

	conf, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conf.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing backend")
		}
	}()

	a.logger.Debug().Str("command", name).Strs("operands", operands).Msg("running command")
	return cmd.run(ctx, a, conf, operands)
}
