// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the merged [StructuredConfig] can start the config
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Backend.URI == "" || cfg.Backend.Timeout < 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return validateToken(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration)
}

// validate leaves the URI optional: the token command runs without one.
func (cfg *ClientConfig) validate() error {
	if cfg.Timeout < 0 {
		return ErrInvalidBackendConfigs
	}

	return validateToken(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
}

func validateToken(signKey, issuer string, duration time.Duration) error {
	if signKey != "" && issuer == "" {
		return fmt.Errorf("%w: token sign key set without issuer", ErrInvalidAppConfigs)
	}
	if duration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	return nil
}
