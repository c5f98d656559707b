// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsager/aicdiscovery/internal/catalog"
	"github.com/emsager/aicdiscovery/internal/core/century"
	"github.com/emsager/aicdiscovery/internal/discovery"
	"github.com/emsager/aicdiscovery/pkg/pointer"
)

var testImages = catalog.NewImageURLBuilder("https://images.example.org/iiif/2")

func record(id int, start, end *int) catalog.RawRecord {
	return catalog.RawRecord{
		ID:          id,
		Title:       "Untitled",
		ArtistTitle: pointer.To("Mary Cassatt"),
		DateStart:   start,
		DateEnd:     end,
	}
}

/*
TestEligible_DateRange exercises the union rule: a record qualifies when
either endpoint touches the inclusive range.
*/
func TestEligible_DateRange(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}

	tests := []struct {
		name     string
		start    *int
		end      *int
		eligible bool
	}{
		{"both_in_range", pointer.To(1850), pointer.To(1855), true},
		{"start_only_in_range", pointer.To(1890), pointer.To(1910), true},
		{"end_only_in_range", pointer.To(1790), pointer.To(1805), true},
		{"both_before", pointer.To(1650), pointer.To(1655), false},
		{"both_after", pointer.To(1920), pointer.To(1930), false},
		{"spanning_without_touching", pointer.To(1700), pointer.To(1950), false},
		{"missing_dates_treated_as_zero", nil, nil, false},
		{"missing_start_end_in_range", nil, pointer.To(1860), true},
		{"boundary_start", pointer.To(1800), nil, true},
		{"boundary_end", nil, pointer.To(1899), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := discovery.Eligible(
				[]catalog.RawRecord{record(1, tt.start, tt.end)},
				nineteenth,
				map[int]struct{}{},
				testImages,
			)

			if tt.eligible {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

/*
TestEligible_Exclusions verifies that excluded ids are dropped no matter
how well their dates fit.
*/
func TestEligible_Exclusions(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}
	records := []catalog.RawRecord{
		record(1, pointer.To(1850), pointer.To(1855)),
		record(2, pointer.To(1850), pointer.To(1855)),
		record(3, pointer.To(1850), pointer.To(1855)),
	}
	excluded := map[int]struct{}{1: {}, 3: {}}

	got := discovery.Eligible(records, nineteenth, excluded, testImages)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

/*
TestEligible_PreservesOrder checks that survivors keep input order.
*/
func TestEligible_PreservesOrder(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}
	records := []catalog.RawRecord{
		record(5, pointer.To(1810), nil),
		record(2, pointer.To(1650), nil), // filtered out
		record(9, pointer.To(1820), nil),
		record(1, pointer.To(1830), nil),
	}

	got := discovery.Eligible(records, nineteenth, map[int]struct{}{}, testImages)

	require.Len(t, got, 3)
	assert.Equal(t, 5, got[0].ID)
	assert.Equal(t, 9, got[1].ID)
	assert.Equal(t, 1, got[2].ID)
}

/*
TestEligible_SkipsArtistlessRecords verifies that records without an
artist are dropped here rather than handed to a save that must reject
them.
*/
func TestEligible_SkipsArtistlessRecords(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}

	nilArtist := record(1, pointer.To(1850), nil)
	nilArtist.ArtistTitle = nil
	emptyArtist := record(2, pointer.To(1850), nil)
	emptyArtist.ArtistTitle = pointer.To("")
	withArtist := record(3, pointer.To(1850), nil)

	got := discovery.Eligible(
		[]catalog.RawRecord{nilArtist, emptyArtist, withArtist},
		nineteenth,
		map[int]struct{}{},
		testImages,
	)

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

/*
TestEligible_ImageURL verifies image URL derivation and its absence for
records without an image.
*/
func TestEligible_ImageURL(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}

	withImage := record(1, pointer.To(1850), nil)
	withImage.ImageID = pointer.To("abc-123")
	withoutImage := record(2, pointer.To(1850), nil)

	got := discovery.Eligible([]catalog.RawRecord{withImage, withoutImage}, nineteenth, map[int]struct{}{}, testImages)

	require.Len(t, got, 2)
	require.NotNil(t, got[0].ImageURL)
	assert.Equal(t, "https://images.example.org/iiif/2/abc-123/full/843,/0/default.jpg", *got[0].ImageURL)
	assert.Nil(t, got[1].ImageURL)
}

/*
TestEligible_CarriesDisplayFields checks the canonical mapping of the
provider fields.
*/
func TestEligible_CarriesDisplayFields(t *testing.T) {
	nineteenth := century.Range{Start: 1800, End: 1899}

	raw := catalog.RawRecord{
		ID:            77,
		Title:         "The Child's Bath",
		ArtistTitle:   pointer.To("Mary Cassatt"),
		ArtistDisplay: pointer.To("Mary Cassatt\nAmerican, 1844-1926"),
		DateStart:     pointer.To(1893),
		DateEnd:       pointer.To(1893),
		DateDisplay:   pointer.To("1893"),
		MediumDisplay: pointer.To("Oil on canvas"),
		Dimensions:    pointer.To("100.3 x 66.1 cm"),
	}

	got := discovery.Eligible([]catalog.RawRecord{raw}, nineteenth, map[int]struct{}{}, testImages)

	require.Len(t, got, 1)
	detail := got[0]
	assert.Equal(t, 77, detail.ID)
	assert.Equal(t, "The Child's Bath", detail.Title)
	assert.Equal(t, "Mary Cassatt", detail.ArtistTitle)
	assert.Equal(t, "1893", *detail.DateDisplay)
	assert.Equal(t, "Oil on canvas", *detail.MediumDisplay)
}
