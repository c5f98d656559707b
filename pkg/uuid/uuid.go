// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package uuid generates time-ordered unique identifiers.

It wraps google/uuid to produce Version 7 values, which sort by creation
time and keep PostgreSQL B-tree indexes compact. This is the ID type for
all internally generated primary keys (users, sessions, judgments).
Artwork ids are the exception: they come from the external catalog.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}
