// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artist

import "context"

// Repository is the data-access contract for artists.
type Repository interface {
	GetArtist(ctx context.Context, id int) (*Artist, error)
	FindByName(ctx context.Context, name string) (*Artist, error)

	// EnsureArtist returns the artist with the given display name, creating
	// it first when absent. The returned artist is always durably committed,
	// so an artwork row may reference it immediately.
	EnsureArtist(ctx context.Context, name string) (*Artist, error)
}
