// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artwork

import "context"

// Repository is the data-access contract for saved artworks.
type Repository interface {
	GetArtwork(ctx context.Context, id int) (*Artwork, error)
	ListArtworks(ctx context.Context, filter ListFilter, limit, offset int) ([]*Artwork, int, error)

	// Upsert inserts the artwork or, when the catalog id already exists,
	// overwrites every mutable field with the new values (full replace,
	// not merge). The referenced artist must already be committed.
	Upsert(ctx context.Context, a *Artwork) error
}
