// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

// Package dberr bridges low-level PostgreSQL errors to application errors.
//
// Stores never return raw pgx errors to services; everything funnels through
// [Wrap], which classifies by SQLSTATE so that callers can distinguish a
// duplicate row from a lost connection without importing pgx themselves.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emsager/aicdiscovery/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Lookup-or-create paths use it to detect a concurrent insert
// and fall back to re-reading.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Wrap classifies a database error into a client-safe [apperr.AppError].
//
// The action label names the failed operation for server-side logs; it is
// never shown to clients.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same identity already exists")
		case pgerrcode.NotNullViolation:
			return apperr.ValidationError("A required field is missing", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "This field is required",
			})
		case pgerrcode.ForeignKeyViolation:
			return apperr.Unprocessable("Referenced record does not exist")
		case pgerrcode.ConnectionException, pgerrcode.ConnectionFailure,
			pgerrcode.ConnectionDoesNotExist, pgerrcode.AdminShutdown:
			return &apperr.AppError{
				Code:       "SERVICE_UNAVAILABLE",
				Message:    "Storage connection lost",
				HTTPStatus: 503,
				Cause:      err,
			}
		}
	}

	// Anything unclassified becomes an internal error with the cause retained
	// for logging.
	return apperr.Internal(err)
}
