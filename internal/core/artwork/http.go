// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artwork

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/emsager/aicdiscovery/internal/platform/request"
	"github.com/emsager/aicdiscovery/internal/platform/respond"
	"github.com/emsager/aicdiscovery/pkg/convert"
	"github.com/emsager/aicdiscovery/pkg/pagination"
)

// Handler serves the saved-artwork read endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the read endpoints to the shared /artworks router.
// The judgment handler registers its own routes on the same router, so
// neither owns the whole subtree.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/", handler.listArtworks)
	router.Get("/{artworkID}", handler.getArtwork)
}

func (handler *Handler) listArtworks(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	params := ListParams{
		Query:    query.Get("q"),
		ArtistID: convert.ToIntD(query.Get("artist_id"), 0),
		Century:  query.Get("century"),
	}

	artworks, meta, err := handler.service.List(request.Context(), params, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artworks, *meta)
}

func (handler *Handler) getArtwork(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "artworkID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}
