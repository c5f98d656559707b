// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package judgment

import (
	"context"

	"github.com/emsager/aicdiscovery/internal/core/artwork"
)

// Repository is the data-access contract for judgments.
type Repository interface {
	// Create records a judgment. Within one transaction it deletes any
	// opposite-kind row for the same (user, artwork) and inserts the new
	// row; re-recording an identical judgment is a no-op success.
	Create(ctx context.Context, j *Judgment) error

	// Delete removes a judgment. Deleting a judgment that was never
	// recorded succeeds without effect.
	Delete(ctx context.Context, userID string, artworkID int, kind string) error

	// ExclusionSets returns the artwork ids the user has favorited and
	// rejected. A user with no judgments gets two empty sets, not an
	// error.
	ExclusionSets(ctx context.Context, userID string) (favorited, rejected map[int]struct{}, err error)

	// ListFavorites returns the user's favorited artworks, most recently
	// judged first, with the total favorite count.
	ListFavorites(ctx context.Context, userID string, limit, offset int) ([]*artwork.Artwork, int, error)
}
