// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artwork_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsager/aicdiscovery/internal/core/artist"
	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
	"github.com/emsager/aicdiscovery/pkg/pagination"
	"github.com/emsager/aicdiscovery/pkg/pointer"
)

// # Test Doubles

type fakeArtworkRepository struct {
	rows       map[int]*artwork.Artwork
	lastFilter artwork.ListFilter
}

func (f *fakeArtworkRepository) GetArtwork(ctx context.Context, id int) (*artwork.Artwork, error) {
	if row, ok := f.rows[id]; ok {
		return row, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeArtworkRepository) ListArtworks(ctx context.Context, filter artwork.ListFilter, limit, offset int) ([]*artwork.Artwork, int, error) {
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeArtworkRepository) Upsert(ctx context.Context, a *artwork.Artwork) error {
	f.rows[a.ID] = a
	return nil
}

type fakeArtistRepository struct {
	byName  map[string]*artist.Artist
	ensured []string
	nextID  int
}

func (f *fakeArtistRepository) GetArtist(ctx context.Context, id int) (*artist.Artist, error) {
	for _, a := range f.byName {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeArtistRepository) FindByName(ctx context.Context, name string) (*artist.Artist, error) {
	if a, ok := f.byName[name]; ok {
		return a, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeArtistRepository) EnsureArtist(ctx context.Context, name string) (*artist.Artist, error) {
	f.ensured = append(f.ensured, name)
	if a, ok := f.byName[name]; ok {
		return a, nil
	}
	f.nextID++
	a := &artist.Artist{ID: f.nextID, Name: name}
	f.byName[name] = a
	return a, nil
}

func newService() (*artwork.Service, *fakeArtworkRepository, *fakeArtistRepository) {
	artworks := &fakeArtworkRepository{rows: map[int]*artwork.Artwork{}}
	artists := &fakeArtistRepository{byName: map[string]*artist.Artist{}}
	return artwork.NewService(artworks, artists), artworks, artists
}

func validDetail() *artwork.Detail {
	return &artwork.Detail{
		ID:          27992,
		Title:       "A Sunday on La Grande Jatte",
		ArtistTitle: "Georges Seurat",
		DateStart:   pointer.To(1884),
		DateEnd:     pointer.To(1886),
	}
}

// # Tests

/*
TestSave_ResolvesArtistBeforeArtwork checks the artist-before-artwork
dependency and the field mapping onto the stored row.
*/
func TestSave_ResolvesArtistBeforeArtwork(t *testing.T) {
	service, artworks, artists := newService()

	saved, err := service.Save(context.Background(), validDetail())

	require.NoError(t, err)
	require.Len(t, artists.ensured, 1)
	assert.Equal(t, "Georges Seurat", artists.ensured[0])

	stored := artworks.rows[27992]
	require.NotNil(t, stored)
	assert.Equal(t, saved.ArtistID, stored.ArtistID)
	assert.Equal(t, "A Sunday on La Grande Jatte", stored.Title)
	assert.Equal(t, 1884, *stored.DateStart)
}

/*
TestSave_Idempotent checks that saving the same detail twice leaves one
row and reuses the artist.
*/
func TestSave_Idempotent(t *testing.T) {
	service, artworks, artists := newService()

	first, err := service.Save(context.Background(), validDetail())
	require.NoError(t, err)

	second, err := service.Save(context.Background(), validDetail())
	require.NoError(t, err)

	assert.Len(t, artworks.rows, 1)
	assert.Equal(t, first.ArtistID, second.ArtistID)
	// EnsureArtist ran twice but minted one artist.
	assert.Len(t, artists.ensured, 2)
	assert.Len(t, artists.byName, 1)
}

/*
TestSave_Validation rejects records missing identity or required text.
*/
func TestSave_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *artwork.Detail)
	}{
		{"zero_id", func(d *artwork.Detail) { d.ID = 0 }},
		{"negative_id", func(d *artwork.Detail) { d.ID = -1 }},
		{"missing_title", func(d *artwork.Detail) { d.Title = "" }},
		{"missing_artist", func(d *artwork.Detail) { d.ArtistTitle = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, artworks, _ := newService()
			detail := validDetail()
			tt.mutate(detail)

			_, err := service.Save(context.Background(), detail)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, artworks.rows)
		})
	}
}

/*
TestList_ResolvesCenturyToYearRange checks the century filter becomes a
year range at the repository boundary.
*/
func TestList_ResolvesCenturyToYearRange(t *testing.T) {
	service, artworks, _ := newService()

	_, _, err := service.List(context.Background(), artwork.ListParams{Century: "18th Century"}, pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 1700, artworks.lastFilter.YearStart)
	assert.Equal(t, 1799, artworks.lastFilter.YearEnd)
}

/*
TestList_UnknownCentury fails fast instead of returning an unfiltered
listing.
*/
func TestList_UnknownCentury(t *testing.T) {
	service, artworks, _ := newService()

	_, _, err := service.List(context.Background(), artwork.ListParams{Century: "21st Century"}, pagination.Params{Page: 1, Limit: 20})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNKNOWN_CENTURY", ae.Code)
	assert.Zero(t, artworks.lastFilter.YearStart)
}
