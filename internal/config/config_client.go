// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by confctl.
type ClientConfig struct {
	// URI selects the backend; commands that touch configuration require it.
	URI string
	// Prefix is applied to the backend before the command runs.
	Prefix string
	// Timeout bounds network backends.
	Timeout time.Duration

	// TokenSignKey, TokenIssuer and TokenDuration parameterise the token
	// command.
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// Args holds the command and its operands left over after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.Args = flagArgs()

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		URI:           cfg.Backend.URI,
		Prefix:        cfg.Backend.Prefix,
		Timeout:       cfg.Backend.Timeout,
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
	}
}
