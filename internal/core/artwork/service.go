// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artwork

import (
	"context"
	"fmt"

	"github.com/emsager/aicdiscovery/internal/core/artist"
	"github.com/emsager/aicdiscovery/internal/core/century"
	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/validate"
	"github.com/emsager/aicdiscovery/pkg/pagination"
)

// Service coordinates artwork persistence with artist resolution.
type Service struct {
	repository Repository
	artists    artist.Repository
}

func NewService(repository Repository, artists artist.Repository) *Service {
	return &Service{repository: repository, artists: artists}
}

func (service *Service) Get(ctx context.Context, id int) (*Artwork, error) {
	if id <= 0 {
		return nil, apperr.ValidationError("Artwork id must be positive")
	}
	return service.repository.GetArtwork(ctx, id)
}

// ListParams are the query parameters accepted by List.
type ListParams struct {
	Query    string
	ArtistID int
	Century  string
}

// List returns a page of saved artworks. When a century name is supplied
// it is resolved to its year range; an unconfigured name is rejected
// before any query runs.
func (service *Service) List(ctx context.Context, params ListParams, page pagination.Params) ([]*Artwork, *pagination.Meta, error) {
	filter := ListFilter{Query: params.Query, ArtistID: params.ArtistID}

	if params.Century != "" {
		r, ok := century.RangeFor(params.Century)
		if !ok {
			return nil, nil, apperr.UnknownCentury(params.Century)
		}
		filter.YearStart = r.Start
		filter.YearEnd = r.End
	}

	artworks, total, err := service.repository.ListArtworks(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, nil, err
	}

	meta := pagination.NewMeta(page.Page, page.Limit, total)
	return artworks, &meta, nil
}

// Save persists a display-ready artwork record. The artist is resolved
// (and created when unseen) before the artwork row is written, so the
// foreign key always lands on a committed artist. Saving an id that
// already exists replaces every mutable field.
func (service *Service) Save(ctx context.Context, detail *Detail) (*Artwork, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldID, detail.ID).
		Required(FieldTitle, detail.Title).MaxLen(FieldTitle, detail.Title, 1024).
		Required(FieldArtistTitle, detail.ArtistTitle)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	resolved, err := service.artists.EnsureArtist(ctx, detail.ArtistTitle)
	if err != nil {
		return nil, fmt.Errorf("resolve artist %q: %w", detail.ArtistTitle, err)
	}

	record := &Artwork{
		ID:            detail.ID,
		Title:         detail.Title,
		ArtistID:      resolved.ID,
		ArtistName:    resolved.Name,
		ArtistDisplay: detail.ArtistDisplay,
		DateStart:     detail.DateStart,
		DateEnd:       detail.DateEnd,
		DateDisplay:   detail.DateDisplay,
		MediumDisplay: detail.MediumDisplay,
		Dimensions:    detail.Dimensions,
		ImageID:       detail.ImageID,
		ImageURL:      detail.ImageURL,
		OnView:        detail.OnView,
		OnLoan:        detail.OnLoan,
	}

	if err := service.repository.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}
