// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package judgment

import (
	"context"

	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/pkg/pagination"
	"github.com/emsager/aicdiscovery/pkg/uuid"
)

// Service enforces the judgment rules: the artwork must already be saved
// locally (discovery persists before anything is judgeable), and each
// judgment carries the artwork's artist id denormalized.
type Service struct {
	repository Repository
	artworks   artwork.Repository
}

func NewService(repository Repository, artworks artwork.Repository) *Service {
	return &Service{repository: repository, artworks: artworks}
}

func (service *Service) Favorite(ctx context.Context, userID string, artworkID int) error {
	return service.record(ctx, userID, artworkID, KindFavorite)
}

func (service *Service) Dislike(ctx context.Context, userID string, artworkID int) error {
	return service.record(ctx, userID, artworkID, KindDislike)
}

func (service *Service) Unfavorite(ctx context.Context, userID string, artworkID int) error {
	return service.repository.Delete(ctx, userID, artworkID, KindFavorite)
}

func (service *Service) Undislike(ctx context.Context, userID string, artworkID int) error {
	return service.repository.Delete(ctx, userID, artworkID, KindDislike)
}

func (service *Service) ExclusionSets(ctx context.Context, userID string) (map[int]struct{}, map[int]struct{}, error) {
	return service.repository.ExclusionSets(ctx, userID)
}

func (service *Service) ListFavorites(ctx context.Context, userID string, page pagination.Params) ([]*artwork.Artwork, *pagination.Meta, error) {
	favorites, total, err := service.repository.ListFavorites(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, nil, err
	}

	meta := pagination.NewMeta(page.Page, page.Limit, total)
	return favorites, &meta, nil
}

func (service *Service) record(ctx context.Context, userID string, artworkID int, kind string) error {
	if artworkID <= 0 {
		return apperr.ValidationError("Artwork id must be positive")
	}

	// Judging requires a locally saved artwork with a resolved artist;
	// the denormalized artist id comes from that row.
	saved, err := service.artworks.GetArtwork(ctx, artworkID)
	if err != nil {
		return err
	}

	return service.repository.Create(ctx, &Judgment{
		ID:        uuid.New(),
		UserID:    userID,
		ArtworkID: saved.ID,
		ArtistID:  saved.ArtistID,
		Kind:      kind,
	})
}
