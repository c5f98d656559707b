// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package discovery drives the artwork discovery pipeline: fetch catalog
pages, filter them against the user's century and judgment history,
persist the survivors, and stop at the quota.
*/
package discovery

import (
	"github.com/emsager/aicdiscovery/internal/catalog"
	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/core/century"
)

// Eligible returns the records that fall inside the year range, carry
// an artist, and are not excluded, normalized into the canonical
// display shape. Input
// order is preserved and no deduplication happens here; overlapping ids
// across pages resolve at the upsert.
//
// A missing or null date counts as year 0, which keeps undated records
// out of every configured range rather than failing the batch.
func Eligible(records []catalog.RawRecord, yearRange century.Range, excluded map[int]struct{}, images *catalog.ImageURLBuilder) []*artwork.Detail {
	var eligible []*artwork.Detail

	for _, record := range records {
		if _, skip := excluded[record.ID]; skip {
			continue
		}

		start := yearOrZero(record.DateStart)
		end := yearOrZero(record.DateEnd)

		// In range when either endpoint touches the range. A work that
		// spans past one edge still qualifies.
		if !yearRange.Contains(start) && !yearRange.Contains(end) {
			continue
		}

		// Saving requires a resolved artist, so a record without one
		// can never persist. Dropping it here keeps the save path free
		// of predictable per-record failures.
		if record.ArtistTitle == nil || *record.ArtistTitle == "" {
			continue
		}

		eligible = append(eligible, &artwork.Detail{
			ID:            record.ID,
			Title:         record.Title,
			ArtistTitle:   *record.ArtistTitle,
			ArtistDisplay: record.ArtistDisplay,
			DateStart:     record.DateStart,
			DateEnd:       record.DateEnd,
			DateDisplay:   record.DateDisplay,
			MediumDisplay: record.MediumDisplay,
			Dimensions:    record.Dimensions,
			ImageID:       record.ImageID,
			ImageURL:      images.URL(record.ImageID),
		})
	}

	return eligible
}

func yearOrZero(year *int) int {
	if year == nil {
		return 0
	}
	return *year
}
