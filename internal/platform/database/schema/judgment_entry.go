// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package schema

// JudgmentEntryTable represents the 'judgment.entry' table.
//
// One row per (user, artwork, kind); a partial-free unique constraint on
// that triple makes repeated judging idempotent at the storage layer.
type JudgmentEntryTable struct {
	Table     string
	ID        string
	UserID    string
	ArtworkID string
	ArtistID  string
	Kind      string
	CreatedAt string
}

// JudgmentEntry is the schema definition for judgment.entry
var JudgmentEntry = JudgmentEntryTable{
	Table:     "judgment.entry",
	ID:        "id",
	UserID:    "userid",
	ArtworkID: "artworkid",
	ArtistID:  "artistid",
	Kind:      "kind",
	CreatedAt: "createdat",
}

func (t JudgmentEntryTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ArtworkID, t.ArtistID, t.Kind, t.CreatedAt}
}
