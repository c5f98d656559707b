// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	// FindByID returns the account with the given ID, including the
	// joined century name.
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByUsername returns the account with the given username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create persists a brand-new user account.
	Create(ctx context.Context, user *User) error

	// Update persists changes to the mutable profile fields (names and
	// century preference).
	Update(ctx context.Context, user *User) error

	// UpdatePassword replaces only the user's password hash.
	UpdatePassword(ctx context.Context, userID, newHash string) error

	// PreferredCentury returns the name of the user's chosen century.
	PreferredCentury(ctx context.Context, userID string) (string, error)
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token
// sessions.
type SessionRepository interface {

	// Create persists a new session for an authenticated login. The
	// session expires on its own at ExpiresAt.
	Create(ctx context.Context, session *Session) error

	// FindByTokenHash returns the live session matching the given token
	// hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	// Revoke invalidates the session with the given token hash.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAll invalidates every live session belonging to the user.
	RevokeAll(ctx context.Context, userID string) error
}
