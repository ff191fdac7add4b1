// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
)

// defaultRequestTimeout bounds a request when the server config leaves the
// timeout unset.
const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services       *service.Services
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	logger.Info().Dur("request_timeout", timeout).Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: timeout,
		logger:         logger,
	}
}
