// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsager/aicdiscovery/internal/catalog"
	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/constants"
	"github.com/emsager/aicdiscovery/pkg/pointer"
)

// # Test Doubles

// fakeFetcher serves scripted pages and can fail at a chosen call.
type fakeFetcher struct {
	pages     [][]catalog.RawRecord
	failAt    int // 1-based call number that fails; 0 means never
	callCount int
}

func (f *fakeFetcher) FetchPage(ctx context.Context, query catalog.PageQuery) ([]catalog.RawRecord, error) {
	f.callCount++
	if f.failAt > 0 && f.callCount == f.failAt {
		return nil, &catalog.Error{Kind: catalog.KindConnection, Message: "connection reset"}
	}
	if f.callCount > len(f.pages) {
		return nil, nil
	}
	return f.pages[f.callCount-1], nil
}

// fakeSaver persists into a map and can reject chosen ids.
type fakeSaver struct {
	saved    map[int]*artwork.Artwork
	rejectID int
}

func (f *fakeSaver) Save(ctx context.Context, detail *artwork.Detail) (*artwork.Artwork, error) {
	if detail.ID == f.rejectID {
		return nil, errors.New("resolve artist: connection lost")
	}
	record := &artwork.Artwork{ID: detail.ID, Title: detail.Title}
	f.saved[detail.ID] = record
	return record, nil
}

type fakePreferences struct{ centuryName string }

func (f *fakePreferences) PreferredCentury(ctx context.Context, userID string) (string, error) {
	return f.centuryName, nil
}

type fakeExclusions struct {
	favorited map[int]struct{}
	rejected  map[int]struct{}
}

func (f *fakeExclusions) ExclusionSets(ctx context.Context, userID string) (map[int]struct{}, map[int]struct{}, error) {
	return f.favorited, f.rejected, nil
}

func newTestService(fetcher catalog.Fetcher, saver Saver, preferred string, exclusions *fakeExclusions) *Service {
	if exclusions == nil {
		exclusions = &fakeExclusions{favorited: map[int]struct{}{}, rejected: map[int]struct{}{}}
	}
	return NewService(
		fetcher,
		catalog.NewImageURLBuilder("https://images.example.org/iiif/2"),
		saver,
		&fakePreferences{centuryName: preferred},
		exclusions,
	)
}

func eligiblePage(startID, count, year int) []catalog.RawRecord {
	page := make([]catalog.RawRecord, 0, count)
	for i := 0; i < count; i++ {
		page = append(page, catalog.RawRecord{
			ID:          startID + i,
			Title:       "Untitled",
			ArtistTitle: pointer.To("Mary Cassatt"),
			DateStart:   pointer.To(year),
			DateEnd:     pointer.To(year),
		})
	}
	return page
}

// endlessFetcher serves one fresh eligible record per call and never an
// empty page, like a sparse search that always has one more result.
type endlessFetcher struct {
	year      int
	callCount int
}

func (f *endlessFetcher) FetchPage(ctx context.Context, query catalog.PageQuery) ([]catalog.RawRecord, error) {
	f.callCount++
	return eligiblePage(f.callCount*1000, 1, f.year), nil
}

// # Tests

/*
TestDiscover_QuotaTermination checks that a source with plentiful
eligible records stops exactly at the quota.
*/
func TestDiscover_QuotaTermination(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{
		eligiblePage(1, constants.DiscoveryPageSize, 1850),
		eligiblePage(1000, constants.DiscoveryPageSize, 1850),
	}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, constants.DiscoveryQuota)
	assert.Equal(t, "19th Century", batch.Century)
	assert.Empty(t, batch.Notice)
	// One page holds more eligible records than the quota needs.
	assert.Equal(t, 1, fetcher.callCount)
}

/*
TestDiscover_ExhaustionTermination checks that an empty page ends the
run with whatever was collected.
*/
func TestDiscover_ExhaustionTermination(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{
		eligiblePage(1, 8, 1850),
		eligiblePage(100, 5, 1850),
		{}, // exhausted
	}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, 13)
	assert.Equal(t, 3, fetcher.callCount)
}

/*
TestDiscover_PageCapFlagsPartialBatch checks that a sparse source that
never exhausts ends at the page cap with a notice, so a capped run is
distinguishable from the catalog running dry.
*/
func TestDiscover_PageCapFlagsPartialBatch(t *testing.T) {
	fetcher := &endlessFetcher{year: 1850}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, constants.DiscoveryMaxPages)
	assert.Equal(t, constants.DiscoveryMaxPages, fetcher.callCount)
	assert.NotEmpty(t, batch.Notice)
}

/*
TestDiscover_IneligibleRecordsSkipped checks that out-of-range records
do not count toward the quota.
*/
func TestDiscover_IneligibleRecordsSkipped(t *testing.T) {
	page := append(eligiblePage(1, 4, 1850), eligiblePage(500, 6, 1650)...)
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{page, {}}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, 4)
}

/*
TestDiscover_FetchFailureReturnsPartialBatch checks that a mid-run
fetch failure keeps the persisted work and flags the batch with a
notice instead of erroring.
*/
func TestDiscover_FetchFailureReturnsPartialBatch(t *testing.T) {
	fetcher := &fakeFetcher{
		pages:  [][]catalog.RawRecord{eligiblePage(1, 10, 1850)},
		failAt: 2,
	}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, 10)
	assert.NotEmpty(t, batch.Notice)
}

/*
TestDiscover_SaveFailureSkipsRecord checks that a single bad record is
dropped while the rest of the batch continues.
*/
func TestDiscover_SaveFailureSkipsRecord(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{eligiblePage(1, 10, 1850), {}}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}, rejectID: 3}
	service := newTestService(fetcher, saver, "19th Century", nil)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, 9)
	assert.NotContains(t, saver.saved, 3)
}

/*
TestDiscover_ExcludesJudgedArtworks checks that ids the user already
judged never enter the batch.
*/
func TestDiscover_ExcludesJudgedArtworks(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{eligiblePage(1, 10, 1850), {}}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	exclusions := &fakeExclusions{
		favorited: map[int]struct{}{1: {}, 2: {}},
		rejected:  map[int]struct{}{3: {}},
	}
	service := newTestService(fetcher, saver, "19th Century", exclusions)

	batch, err := service.Discover(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, batch.Artworks, 7)
	for _, saved := range batch.Artworks {
		assert.NotContains(t, []int{1, 2, 3}, saved.ID)
	}
}

/*
TestDiscover_UnknownCenturyFailsFast checks that an unconfigured
preference errors before any network call.
*/
func TestDiscover_UnknownCenturyFailsFast(t *testing.T) {
	fetcher := &fakeFetcher{}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "21st Century", nil)

	_, err := service.Discover(context.Background(), "user-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNKNOWN_CENTURY", ae.Code)
	assert.Zero(t, fetcher.callCount)
}

/*
TestSurpriseMe_UsesAlternativeCentury checks that the surprise run
never samples the preferred century and honors the injected picker.
*/
func TestSurpriseMe_UsesAlternativeCentury(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{eligiblePage(1, 5, 1750), {}}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)
	service.pickIndex = func(n int) int { return 0 }

	batch, err := service.SurpriseMe(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "18th Century", batch.Century)
	assert.Len(t, batch.Artworks, 5)
}

/*
TestSurpriseMe_NoAlternativeFailsFast checks that an empty candidate
pool errors before any network call.
*/
func TestSurpriseMe_NoAlternativeFailsFast(t *testing.T) {
	fetcher := &fakeFetcher{}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)
	service.alternatives = func(exclude string) []string { return nil }

	_, err := service.SurpriseMe(context.Background(), "user-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NO_ALTERNATIVE_CENTURY", ae.Code)
	assert.Zero(t, fetcher.callCount)
}

/*
TestSurpriseMe_PicksAcrossAllAlternatives exercises the picker bounds.
*/
func TestSurpriseMe_PicksAcrossAllAlternatives(t *testing.T) {
	fetcher := &fakeFetcher{pages: [][]catalog.RawRecord{eligiblePage(1, 1, 1950), {}}}
	saver := &fakeSaver{saved: map[int]*artwork.Artwork{}}
	service := newTestService(fetcher, saver, "19th Century", nil)
	service.pickIndex = func(n int) int {
		require.Equal(t, 2, n)
		return n - 1
	}

	batch, err := service.SurpriseMe(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "20th Century", batch.Century)
}
