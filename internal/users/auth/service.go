// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/emsager/aicdiscovery/internal/core/century"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/sec"
	"github.com/emsager/aicdiscovery/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// Any changes to hashing, registration, or login logic are
// security-sensitive and need careful review.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	centuries         century.Repository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, centuries century.Repository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		centuries:         centuries,
		tokenProvider:     tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	CenturyID int
}

// Register validates, hashes, and persists a brand new user account.
// The chosen century must exist in the reference table; it becomes the
// default filter for every discovery run.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err = service.userRepository.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// The century preference must reference a configured period.
	chosen, err := service.centuries.GetCentury(ctx, input.CenturyID)
	if err != nil {
		return nil, apperr.Unprocessable("Chosen century is not available")
	}

	// Prevent storing plain-text passwords. Default cost balances
	// security against CPU use during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CenturyID:    chosen.ID,
		CenturyName:  chosen.Name,
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login     string // Can be Username or Email
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// Login validates credentials and issues an access/refresh token pair.
// Lookup failures and password failures share one generic message to
// prevent account enumeration.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(ctx, input.Login)
	if err != nil {
		user, err = service.userRepository.FindByUsername(ctx, input.Login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt comparison is constant-time.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	return service.establishSession(ctx, user, input.UserAgent, input.IPAddress)
}

// Logout permanently revokes the session behind the refresh token.
// Revoking an unknown token succeeds; logout is idempotent.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	return service.sessionRepository.Revoke(ctx, sec.HashToken(refreshToken))
}

// # Session Management

// RefreshSession implements refresh token rotation: the presented token
// is revoked before a fresh pair is issued, so a replayed token dies on
// first reuse.
func (service *Service) RefreshSession(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessionRepository.Revoke(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found")
	}

	return service.establishSession(ctx, user, userAgent, ipAddress)
}

// establishSession mints the token pair and persists the tracking
// session for a verified user.
func (service *Service) establishSession(ctx context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := service.sessionRepository.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// # Profile

// Me returns the authenticated user's profile.
func (service *Service) Me(ctx context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(ctx, userID)
}

// UpdateProfileInput holds the mutable profile fields.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	CenturyID int
}

// UpdateProfile changes the user's names and century preference. A new
// century takes effect on the next discovery run; nothing already
// judged or saved is touched.
func (service *Service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error) {
	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	chosen, err := service.centuries.GetCentury(ctx, input.CenturyID)
	if err != nil {
		return nil, apperr.Unprocessable("Chosen century is not available")
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.CenturyID = chosen.ID
	user.CenturyName = chosen.Name

	if err := service.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("auth_service_update_profile_failed: %w", err)
	}

	return user, nil
}

// ChangePassword verifies the current password, stores a new hash, and
// revokes every session so other devices must log in again.
func (service *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_change_password_update_failed: %w", err)
	}

	// Security side effect: force re-login everywhere.
	_ = service.sessionRepository.RevokeAll(ctx, userID)

	return nil
}

// PreferredCentury satisfies the discovery pipeline's preference source.
func (service *Service) PreferredCentury(ctx context.Context, userID string) (string, error) {
	return service.userRepository.PreferredCentury(ctx, userID)
}
