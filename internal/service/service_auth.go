// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/crypto"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, profile changes, the
// password-reset lifecycle and JWT issuance, using a UserRepository for
// persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	passwordHasher crypto.PasswordHasher
	resetTokens    crypto.TokenGenerator
	resetDelivery  ResetTokenDelivery
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// resetTokenDuration controls how long a reset token is accepted.
	resetTokenDuration time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// AuthDeps groups the collaborators of the auth service.
type AuthDeps struct {
	Users          store.UserRepository
	PasswordHasher crypto.PasswordHasher
	ResetTokens    crypto.TokenGenerator
	ResetDelivery  ResetTokenDelivery
	Validator      validators.Validator
}

// NewAuthService constructs a new AuthService wired to deps and populated
// with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(deps AuthDeps, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     deps.Users,
		passwordHasher:     deps.PasswordHasher,
		resetTokens:        deps.ResetTokens,
		resetDelivery:      deps.ResetDelivery,
		validator:          deps.Validator,
		ids:                utils.NewUUIDGenerator(),
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		now:                time.Now,
		logger:             logger,
	}
}

// normalizeEmail trims and lower-cases email so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and issues a token for it.
//
// Returns:
//   - ErrValidation if name, email or password is empty.
//   - ErrConflict if the email is already taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid register request")
		return models.AuthResult{}, validationError(err)
	}

	passwordHash, err := a.hashPassword(ctx, "password", req.Password)
	if err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrConflict
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issue(ctx, user)
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", req.Email).Msg("login with unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwordHasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.issue(ctx, user)
}

func (a *authService) issue(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("error creating token")
		return models.AuthResult{}, err
	}
	return models.AuthResult{User: user, Token: token}, nil
}

// hashPassword hashes password, reporting an over-long one as a validation
// error on field (the JSON name of the password in the request).
func (a *authService) hashPassword(ctx context.Context, field, password string) (string, error) {
	hash, err := a.passwordHasher.Hash(password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", validationError(&validators.FieldsError{Fields: []validators.FieldError{{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d bytes", crypto.MaxPasswordBytes),
		}}})
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error hashing password")
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// GetProfile returns the user or ErrNotFound.
func (a *authService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the display name. An empty name leaves the profile
// unchanged; the email is never updated.
func (a *authService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return a.GetProfile(ctx, userID)
	}

	user, err := a.userRepository.UpdateUserName(ctx, userID, name)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the password after verifying the old one.
//
// Returns:
//   - ErrValidation if the new password is empty.
//   - ErrInvalidOldPassword if the old password does not verify or the user
//     no longer exists.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, "NewPassword"); err != nil {
		return validationError(err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOldPassword
	}
	if err != nil {
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.passwordHasher.Verify(req.OldPassword, user.PasswordHash) {
		log.Debug().Str("user_id", userID).Msg("old password mismatch")
		return ErrInvalidOldPassword
	}

	passwordHash, err := a.hashPassword(ctx, "newPassword", req.NewPassword)
	if err != nil {
		return err
	}

	err = a.userRepository.UpdatePassword(ctx, userID, passwordHash)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOldPassword
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// RequestPasswordReset generates a reset token for the account, stores its
// digest with an expiry (replacing any pending token) and delivers it.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (models.PasswordResetTicket, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.PasswordResetTicket{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.PasswordResetTicket{}, ErrNotFound
	}
	if err != nil {
		return models.PasswordResetTicket{}, fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.resetTokens.Generate()
	if err != nil {
		log.Err(err).Msg("error generating reset token")
		return models.PasswordResetTicket{}, fmt.Errorf("error generating reset token: %w", err)
	}

	expiry := a.now().Add(a.resetTokenDuration)
	if err = a.userRepository.SetResetToken(ctx, user.UserID, a.resetTokens.Digest(token), expiry); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error storing reset token")
		return models.PasswordResetTicket{}, fmt.Errorf("error storing reset token: %w", err)
	}

	exposed, err := a.resetDelivery.Deliver(ctx, user, token)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("error delivering reset token")
		return models.PasswordResetTicket{}, fmt.Errorf("error delivering reset token: %w", err)
	}

	return models.PasswordResetTicket{ResetToken: exposed}, nil
}

// ResetPassword sets a new password for the holder of token. Unknown and
// expired tokens both return ErrInvalidOrExpired; an expired token is
// cleared on the way out.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	passwordHash, err := a.hashPassword(ctx, "newPassword", req.NewPassword)
	if err != nil {
		return err
	}

	digest := a.resetTokens.Digest(req.Token)
	userID, err := a.userRepository.ResetPassword(ctx, digest, passwordHash, a.now())
	if errors.Is(err, store.ErrResetTokenNotFound) {
		if clearErr := a.userRepository.ClearResetToken(ctx, digest); clearErr != nil {
			log.Err(clearErr).Msg("error clearing stale reset token")
		}
		return ErrInvalidOrExpired
	}
	if err != nil {
		log.Err(err).Msg("error resetting password")
		return fmt.Errorf("error resetting password: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("password was reset")
	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
