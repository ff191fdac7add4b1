// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// dotEnvFile is the optional .env file read from the working directory.
const dotEnvFile = ".env"

const (
	ResetDeliveryResponse = "response"
	ResetDeliveryLog      = "log"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost:        10,
			TokenIssuer:             "go-notes",
			TokenDuration:           30 * 24 * time.Hour,
			ResetTokenDuration:      time.Hour,
			ResetDelivery:           ResetDeliveryResponse,
			ResetTokenSweepInterval: 15 * time.Minute,
			Version:                 "dev",
		},
		Server: Server{
			HTTPAddress:    ":5001",
			RequestTimeout: 30 * time.Second,
		},
	}
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Storage: Storage{
			DB: DB{DSN: "notes.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5001",
			RequestTimeout: 10 * time.Second,
		},
	}
}
