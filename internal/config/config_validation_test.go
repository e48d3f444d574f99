// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() StructuredConfig {
	return StructuredConfig{
		Backend: Backend{URI: "file:///etc/app.ini"},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"no backend uri", func(cfg *StructuredConfig) { cfg.Backend.URI = "" }, ErrInvalidBackendConfigs},
		{"negative backend timeout", func(cfg *StructuredConfig) { cfg.Backend.Timeout = -time.Second }, ErrInvalidBackendConfigs},
		{"no address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"negative request timeout", func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -1 }, ErrInvalidServerConfigs},
		{"sign key without issuer", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "k" }, ErrInvalidAppConfigs},
		{"sign key with issuer", func(cfg *StructuredConfig) {
			cfg.App.TokenSignKey = "k"
			cfg.App.TokenIssuer = "confserver"
		}, nil},
		{"negative token duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Minute }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{}).validate())
	assert.ErrorIs(t, (&ClientConfig{Timeout: -1}).validate(), ErrInvalidBackendConfigs)
	assert.ErrorIs(t, (&ClientConfig{TokenSignKey: "k"}).validate(), ErrInvalidAppConfigs)
}
