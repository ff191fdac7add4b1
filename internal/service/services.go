// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/crypto"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	delivery, err := NewResetTokenDelivery(cfg.ResetDelivery, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewValidator()

	return &Services{
		AuthService: NewAuthService(AuthDeps{
			Users:          storages.UserRepository,
			PasswordHasher: crypto.NewPasswordHasher(cfg.PasswordHashCost),
			ResetTokens:    crypto.NewResetTokenGenerator(cfg.PasswordHashKey),
			ResetDelivery:  delivery,
			Validator:      validator,
		}, cfg, logger),
		NoteService:    NewNoteService(storages.NoteRepository, validator, logger),
		AppInfoService: appInfo,
	}, nil
}
