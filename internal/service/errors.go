// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation wraps the per-field messages of rejected input.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned by Register when the email is already taken.
	ErrConflict = errors.New("user already exists")

	// ErrUnauthorized is the parent of every authentication failure.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)

	// ErrInvalidOldPassword is returned by ChangePassword when the current
	// password does not verify.
	ErrInvalidOldPassword = fmt.Errorf("%w: invalid old password", ErrUnauthorized)

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token that
	// fails verification.
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthorized)

	// ErrNotFound is returned when the referenced user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrNotFoundOrForbidden hides whether a note is missing or owned by
	// someone else.
	ErrNotFoundOrForbidden = errors.New("note not found or user not authorized")

	// ErrInvalidOrExpired is returned by ResetPassword for unknown and
	// expired reset tokens alike.
	ErrInvalidOrExpired = errors.New("reset token is invalid or expired")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownResetDelivery = errors.New("unknown reset token delivery")

	// ErrNotLoggedIn is returned by client operations that need a session
	// when none is stored.
	ErrNotLoggedIn = errors.New("not logged in")
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
