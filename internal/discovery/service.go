// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package discovery

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/emsager/aicdiscovery/internal/catalog"
	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/core/century"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/constants"
	"github.com/emsager/aicdiscovery/internal/platform/ctxutil"
)

// PreferenceSource yields the century name a user chose at signup.
type PreferenceSource interface {
	PreferredCentury(ctx context.Context, userID string) (string, error)
}

// ExclusionSource yields the artwork ids a user has already judged.
type ExclusionSource interface {
	ExclusionSets(ctx context.Context, userID string) (favorited, rejected map[int]struct{}, err error)
}

// Saver persists one canonical artwork, resolving its artist first.
type Saver interface {
	Save(ctx context.Context, detail *artwork.Detail) (*artwork.Artwork, error)
}

// Batch is the result of one discovery invocation. Notice carries a
// human-readable warning when the run ended early — a mid-run catalog
// failure or the page cap — with fewer artworks than the quota.
type Batch struct {
	Century  string             `json:"century"`
	Artworks []*artwork.Artwork `json:"artworks"`
	Notice   string             `json:"-"`
}

// Service orchestrates the discovery pipeline.
type Service struct {
	fetcher     catalog.Fetcher
	images      *catalog.ImageURLBuilder
	saver       Saver
	preferences PreferenceSource
	exclusions  ExclusionSource

	// pickIndex selects the surprise century from the alternatives,
	// and alternatives yields the candidate set. Both are injectable
	// so tests can pin the choice and empty the pool.
	pickIndex    func(n int) int
	alternatives func(exclude string) []string
}

func NewService(fetcher catalog.Fetcher, images *catalog.ImageURLBuilder, saver Saver, preferences PreferenceSource, exclusions ExclusionSource) *Service {
	return &Service{
		fetcher:      fetcher,
		images:       images,
		saver:        saver,
		preferences:  preferences,
		exclusions:   exclusions,
		pickIndex:    rand.Intn,
		alternatives: century.Alternatives,
	}
}

// Discover fills a batch from the user's preferred century.
func (service *Service) Discover(ctx context.Context, userID string) (*Batch, error) {
	preferred, err := service.preferences.PreferredCentury(ctx, userID)
	if err != nil {
		return nil, err
	}

	return service.run(ctx, userID, preferred)
}

// SurpriseMe fills a batch from a century other than the user's
// preference, chosen uniformly at random. With only one configured
// century there is nothing to surprise with and the call fails fast.
func (service *Service) SurpriseMe(ctx context.Context, userID string) (*Batch, error) {
	preferred, err := service.preferences.PreferredCentury(ctx, userID)
	if err != nil {
		return nil, err
	}

	alternatives := service.alternatives(preferred)
	if len(alternatives) == 0 {
		return nil, apperr.NoAlternativeCentury()
	}

	return service.run(ctx, userID, alternatives[service.pickIndex(len(alternatives))])
}

// run executes the fetch-filter-persist loop for one century until the
// quota is reached, the catalog is exhausted, the page cap is hit, or a
// fetch fails. Neither a fetch failure nor the cap discards work
// already persisted; the partial batch comes back with a notice
// instead.
func (service *Service) run(ctx context.Context, userID, centuryName string) (*Batch, error) {
	yearRange, ok := century.RangeFor(centuryName)
	if !ok {
		return nil, apperr.UnknownCentury(centuryName)
	}

	favorited, rejected, err := service.exclusions.ExclusionSets(ctx, userID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[int]struct{}, len(favorited)+len(rejected))
	advisory := make([]int, 0, len(favorited)+len(rejected))
	for id := range favorited {
		excluded[id] = struct{}{}
		advisory = append(advisory, id)
	}
	for id := range rejected {
		excluded[id] = struct{}{}
		advisory = append(advisory, id)
	}

	logger := ctxutil.GetLogger(ctx)
	batch := &Batch{Century: centuryName}

	for page := 1; page <= constants.DiscoveryMaxPages; page++ {
		records, err := service.fetcher.FetchPage(ctx, catalog.PageQuery{
			Page:        page,
			Limit:       constants.DiscoveryPageSize,
			ExcludedIDs: advisory,
		})
		if err != nil {
			logger.Warn("discovery_fetch_failed",
				slog.String("century", centuryName),
				slog.Int("page", page),
				slog.Int("collected", len(batch.Artworks)),
				slog.String("error", err.Error()),
			)
			batch.Notice = "The catalog stopped responding partway through; showing what was gathered."
			return batch, nil
		}

		if len(records) == 0 {
			// Genuine exhaustion: the catalog has no more results.
			return batch, nil
		}

		for _, detail := range Eligible(records, yearRange, excluded, service.images) {
			saved, err := service.saver.Save(ctx, detail)
			if err != nil {
				// One bad record never aborts the batch.
				logger.Warn("discovery_save_skipped",
					slog.Int("artwork_id", detail.ID),
					slog.String("error", err.Error()),
				)
				continue
			}

			batch.Artworks = append(batch.Artworks, saved)
			// Pages can overlap; treat a persisted id as excluded from
			// here on so it is not collected twice.
			excluded[saved.ID] = struct{}{}

			if len(batch.Artworks) >= constants.DiscoveryQuota {
				return batch, nil
			}
		}
	}

	// The page cap ended the run with the quota unfilled. Flag the
	// batch so a capped run is never mistaken for exhaustion.
	logger.Warn("discovery_page_cap_reached",
		slog.String("century", centuryName),
		slog.Int("pages", constants.DiscoveryMaxPages),
		slog.Int("collected", len(batch.Artworks)),
	)
	batch.Notice = "Stopped after searching the maximum number of catalog pages; showing what was gathered."

	return batch, nil
}
