// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package artist holds the creator records referenced by saved artworks.

Artists are created lazily: the first time a discovered artwork names a
display name we have not seen, a row is created. Duplicate display names
collapse to one artist via lookup-or-create. The core never deletes an
artist.
*/
package artist

import "time"

// Artist is the creator of zero or more saved artworks.
type Artist struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName = "name"
)
