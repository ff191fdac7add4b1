// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := serverDefaults()
	cfg.App.TokenSignKey = "sign"
	cfg.App.PasswordHashKey = "hash"
	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(cfg *StructuredConfig) {}, nil},
		{"missing sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing hash key", func(cfg *StructuredConfig) { cfg.App.PasswordHashKey = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"unknown delivery", func(cfg *StructuredConfig) { cfg.App.ResetDelivery = "email" }, ErrInvalidAppConfigs},
		{"missing dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"missing address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

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
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:5001", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "notes.db"}},
	}
	assert.NoError(t, valid.validate())

	noAddr := valid
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noDB := valid
	noDB.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDB.validate(), ErrInvalidStorageConfigs)
}
