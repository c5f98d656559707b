// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package judgment records per-user favorite and dislike decisions on
artworks and resolves the exclusion sets the discovery pipeline uses to
skip already-judged works.

A judgment row denormalizes the artist id at write time so that
artist-level reporting never needs to re-join through core.artwork.
*/
package judgment

import "time"

// Judgment kinds. A (user, artwork) pair holds at most one row per kind,
// and recording one kind removes the opposite kind in the same
// transaction.
const (
	KindFavorite = "favorite"
	KindDislike  = "dislike"
)

// Judgment is one recorded decision.
type Judgment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArtworkID int       `json:"artwork_id"`
	ArtistID  int       `json:"artist_id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// opposite returns the kind that must be cleared when this kind is
// recorded.
func opposite(kind string) string {
	if kind == KindFavorite {
		return KindDislike
	}
	return KindFavorite
}
