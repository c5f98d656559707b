// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package artwork persists catalog artworks and their artist dependency.

An artwork row is keyed by the Art Institute of Chicago catalog id so that
repeated discovery runs upsert the same row instead of accumulating
duplicates. Every save resolves (or lazily creates) the artist first; an
artwork never references an uncommitted artist.
*/
package artwork

import "time"

// Artwork is a saved catalog record.
//
// Nullable catalog fields stay pointers all the way to the database; a
// re-fetch overwrites every mutable field with whatever the catalog
// currently reports, including clearing fields the catalog dropped.
type Artwork struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	ArtistID      int       `json:"artist_id"`
	ArtistName    string    `json:"artist_name,omitempty"`
	ArtistDisplay *string   `json:"artist_display"`
	DateStart     *int      `json:"date_start"`
	DateEnd       *int      `json:"date_end"`
	DateDisplay   *string   `json:"date_display"`
	MediumDisplay *string   `json:"medium_display"`
	Dimensions    *string   `json:"dimensions"`
	ImageID       *string   `json:"image_id"`
	ImageURL      *string   `json:"image_url"`
	OnView        *bool     `json:"on_view"`
	OnLoan        *bool     `json:"on_loan"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Detail is the canonical, display-ready artwork shape produced by the
// eligibility filter, independent of the catalog's raw schema. ImageURL is
// derived from ImageID and absent when the catalog reports no image.
type Detail struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	ArtistTitle   string  `json:"artist_title"`
	ArtistDisplay *string `json:"artist_display"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
	DateDisplay   *string `json:"date_display"`
	MediumDisplay *string `json:"medium_display"`
	Dimensions    *string `json:"dimensions"`
	ImageID       *string `json:"image_id"`
	ImageURL      *string `json:"image_url"`
	OnView        *bool   `json:"on_view"`
	OnLoan        *bool   `json:"on_loan"`
}

// ListFilter holds the optional predicates for a saved-artwork listing.
type ListFilter struct {
	// Query is matched case-insensitively against the title.
	Query string
	// ArtistID restricts results to one artist when non-zero.
	ArtistID int
	// YearStart/YearEnd restrict results to artworks whose start or end
	// date falls within the inclusive range, when both are non-zero.
	YearStart int
	YearEnd   int
}

const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldArtistTitle = "artist_title"
)
