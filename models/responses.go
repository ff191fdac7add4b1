// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the public view of a user returned by the profile
// endpoints.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by register and login. Token is the bearer
// token the client must send on protected routes.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// MessageResponse carries a human-readable outcome or error message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ForgotPasswordResponse is returned by POST /api/auth/forgot-password.
// ResetToken is only present when the server is configured to hand the
// token back to the caller instead of delivering it out of band.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// AuthResult is the outcome of a successful register or login in the
// service layer: the user record and the token issued for it.
type AuthResult struct {
	User  User
	Token Token
}

// Response converts the result into its wire form.
func (r AuthResult) Response() AuthResponse {
	return AuthResponse{
		ID:    r.User.UserID,
		Name:  r.User.Name,
		Email: r.User.Email,
		Token: r.Token.SignedString,
	}
}

// PasswordResetTicket is the outcome of a reset request: the token
// handed back to the caller, empty when it was delivered elsewhere.
type PasswordResetTicket struct {
	ResetToken string
}
