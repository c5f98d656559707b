// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package judgment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/judgment"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// # Test Doubles

type fakeJudgmentRepository struct {
	created []*judgment.Judgment
	deleted []string
}

func (f *fakeJudgmentRepository) Create(ctx context.Context, j *judgment.Judgment) error {
	f.created = append(f.created, j)
	return nil
}

func (f *fakeJudgmentRepository) Delete(ctx context.Context, userID string, artworkID int, kind string) error {
	f.deleted = append(f.deleted, kind)
	return nil
}

func (f *fakeJudgmentRepository) ExclusionSets(ctx context.Context, userID string) (map[int]struct{}, map[int]struct{}, error) {
	favorited := make(map[int]struct{})
	rejected := make(map[int]struct{})
	for _, j := range f.created {
		if j.Kind == judgment.KindFavorite {
			favorited[j.ArtworkID] = struct{}{}
		} else {
			rejected[j.ArtworkID] = struct{}{}
		}
	}
	return favorited, rejected, nil
}

func (f *fakeJudgmentRepository) ListFavorites(ctx context.Context, userID string, limit, offset int) ([]*artwork.Artwork, int, error) {
	return nil, 0, nil
}

type fakeArtworkRepository struct {
	artworks map[int]*artwork.Artwork
}

func (f *fakeArtworkRepository) GetArtwork(ctx context.Context, id int) (*artwork.Artwork, error) {
	if saved, ok := f.artworks[id]; ok {
		return saved, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeArtworkRepository) ListArtworks(ctx context.Context, filter artwork.ListFilter, limit, offset int) ([]*artwork.Artwork, int, error) {
	return nil, 0, nil
}

func (f *fakeArtworkRepository) Upsert(ctx context.Context, a *artwork.Artwork) error {
	f.artworks[a.ID] = a
	return nil
}

func newService() (*judgment.Service, *fakeJudgmentRepository, *fakeArtworkRepository) {
	judgments := &fakeJudgmentRepository{}
	artworks := &fakeArtworkRepository{artworks: map[int]*artwork.Artwork{
		27992: {ID: 27992, Title: "A Sunday on La Grande Jatte", ArtistID: 7},
	}}
	return judgment.NewService(judgments, artworks), judgments, artworks
}

// # Tests

/*
TestFavorite_RecordsWithDenormalizedArtist checks that the judgment row
carries the artist id taken from the saved artwork.
*/
func TestFavorite_RecordsWithDenormalizedArtist(t *testing.T) {
	service, judgments, _ := newService()

	err := service.Favorite(context.Background(), "user-1", 27992)

	require.NoError(t, err)
	require.Len(t, judgments.created, 1)

	recorded := judgments.created[0]
	assert.Equal(t, "user-1", recorded.UserID)
	assert.Equal(t, 27992, recorded.ArtworkID)
	assert.Equal(t, 7, recorded.ArtistID)
	assert.Equal(t, judgment.KindFavorite, recorded.Kind)
	assert.NotEmpty(t, recorded.ID)
}

/*
TestDislike_RequiresSavedArtwork checks that judging an unknown artwork
fails with NotFound and records nothing.
*/
func TestDislike_RequiresSavedArtwork(t *testing.T) {
	service, judgments, _ := newService()

	err := service.Dislike(context.Background(), "user-1", 999999)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
	assert.Empty(t, judgments.created)
}

/*
TestJudge_RejectsNonPositiveID checks input validation before any
storage access.
*/
func TestJudge_RejectsNonPositiveID(t *testing.T) {
	service, judgments, _ := newService()

	tests := []struct {
		name      string
		artworkID int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Favorite(context.Background(), "user-1", tt.artworkID)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}

	assert.Empty(t, judgments.created)
}

/*
TestUnfavorite_DeletesOnlyFavoriteKind checks the delete goes to the
right kind.
*/
func TestUnfavorite_DeletesOnlyFavoriteKind(t *testing.T) {
	service, judgments, _ := newService()

	require.NoError(t, service.Unfavorite(context.Background(), "user-1", 27992))
	require.NoError(t, service.Undislike(context.Background(), "user-1", 27992))

	require.Len(t, judgments.deleted, 2)
	assert.Equal(t, judgment.KindFavorite, judgments.deleted[0])
	assert.Equal(t, judgment.KindDislike, judgments.deleted[1])
}

/*
TestExclusionSets_SplitsByKind checks the pass-through resolution of
favorited and rejected ids.
*/
func TestExclusionSets_SplitsByKind(t *testing.T) {
	service, _, artworks := newService()
	artworks.artworks[111628] = &artwork.Artwork{ID: 111628, ArtistID: 9}

	require.NoError(t, service.Favorite(context.Background(), "user-1", 27992))
	require.NoError(t, service.Dislike(context.Background(), "user-1", 111628))

	favorited, rejected, err := service.ExclusionSets(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Contains(t, favorited, 27992)
	assert.Contains(t, rejected, 111628)
	assert.NotContains(t, favorited, 111628)
}
