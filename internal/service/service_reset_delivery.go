// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// NewResetTokenDelivery returns the delivery selected by mode
// ([config.ResetDeliveryResponse] or [config.ResetDeliveryLog]).
func NewResetTokenDelivery(mode string, logger *logger.Logger) (ResetTokenDelivery, error) {
	switch mode {
	case config.ResetDeliveryResponse:
		return responseDelivery{}, nil
	case config.ResetDeliveryLog:
		return &logDelivery{logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResetDelivery, mode)
	}
}

// responseDelivery hands the token back to the API caller.
type responseDelivery struct{}

func (responseDelivery) Deliver(_ context.Context, _ models.User, token string) (string, error) {
	return token, nil
}

// logDelivery writes the token to the server log only.
type logDelivery struct {
	logger *logger.Logger
}

func (d *logDelivery) Deliver(_ context.Context, user models.User, token string) (string, error) {
	d.logger.Info().
		Str("user_id", user.UserID).
		Str("email", user.Email).
		Str("reset_token", token).
		Msg("password reset requested")

	return "", nil
}
