// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-notes server handlers, middleware and client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or printed by the client to describe the outcome of an
// operation. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgAPIIsRunning is the body of the root liveness route.
	MsgAPIIsRunning = "API is running..."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidEmailOrPassword is returned by login for an unknown email and
	// for a wrong password alike, so account existence is not disclosed.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgUserNotFound is returned when the authenticated user no longer
	// exists or a reset is requested for an unknown email.
	MsgUserNotFound = "User not found"

	// MsgInvalidOldPassword is returned by change-password when the old
	// password does not verify.
	MsgInvalidOldPassword = "Invalid old password"

	// MsgPasswordUpdated is returned after a successful password change.
	MsgPasswordUpdated = "Password updated successfully"

	// MsgResetTokenGenerated is returned after a reset request.
	MsgResetTokenGenerated = "Password reset token generated"

	// MsgPasswordReset is returned after a successful password reset.
	MsgPasswordReset = "Password has been reset successfully"

	// MsgInvalidOrExpiredToken is returned for an unknown, used or expired
	// reset token.
	MsgInvalidOrExpiredToken = "Invalid or expired token"

	// MsgNotAuthorizedNoToken is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthorizedNoToken = "Not authorized, no token"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Not authorized, token failed"

	// MsgNoteNotFound is returned when a note does not exist, belongs to
	// another user, or the id is malformed.
	MsgNoteNotFound = "Note not found or user not authorized"

	// MsgNoteRemoved is returned after a successful note deletion.
	MsgNoteRemoved = "Note removed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgNotLoggedIn is printed by the client when a command needs a
	// session and none is stored.
	MsgNotLoggedIn = "not logged in: run `notes login` first"
)
