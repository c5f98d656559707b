// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package schema

// ArtworkTable represents the 'core.artwork' table.
//
// The primary key is the Art Institute of Chicago catalog id, not a
// generated serial, so repeated discovery runs upsert instead of duplicating.
type ArtworkTable struct {
	Table         string
	ID            string
	Title         string
	ArtistID      string
	ArtistDisplay string
	DateStart     string
	DateEnd       string
	DateDisplay   string
	MediumDisplay string
	Dimensions    string
	ImageID       string
	ImageURL      string
	OnView        string
	OnLoan        string
	CreatedAt     string
	UpdatedAt     string
}

// Artwork is the schema definition for core.artwork
var Artwork = ArtworkTable{
	Table:         "core.artwork",
	ID:            "id",
	Title:         "title",
	ArtistID:      "artistid",
	ArtistDisplay: "artistdisplay",
	DateStart:     "datestart",
	DateEnd:       "dateend",
	DateDisplay:   "datedisplay",
	MediumDisplay: "mediumdisplay",
	Dimensions:    "dimensions",
	ImageID:       "imageid",
	ImageURL:      "imageurl",
	OnView:        "onview",
	OnLoan:        "onloan",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t ArtworkTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.ArtistID, t.ArtistDisplay, t.DateStart, t.DateEnd,
		t.DateDisplay, t.MediumDisplay, t.Dimensions, t.ImageID, t.ImageURL,
		t.OnView, t.OnLoan, t.CreatedAt, t.UpdatedAt,
	}
}
