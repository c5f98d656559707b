// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package judgment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/emsager/aicdiscovery/internal/platform/request"
	"github.com/emsager/aicdiscovery/internal/platform/respond"
	"github.com/emsager/aicdiscovery/pkg/pagination"
)

// Handler serves the judgment endpoints. All of them require an
// authenticated user.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the per-artwork judgment routes to the shared
// /artworks router.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/{artworkID}/favorite", handler.judge(KindFavorite))
	router.Delete("/{artworkID}/favorite", handler.unjudge(KindFavorite))
	router.Post("/{artworkID}/dislike", handler.judge(KindDislike))
	router.Delete("/{artworkID}/dislike", handler.unjudge(KindDislike))
}

// FavoriteRoutes returns the router for the /favorites listing.
func (handler *Handler) FavoriteRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listFavorites)
	return router
}

func (handler *Handler) judge(kind string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		userID, err := requestutil.RequiredUserID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		artworkID, err := requestutil.IntParam(request, "artworkID")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if kind == KindFavorite {
			err = handler.service.Favorite(request.Context(), userID, artworkID)
		} else {
			err = handler.service.Dislike(request.Context(), userID, artworkID)
		}
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.NoContent(writer)
	}
}

func (handler *Handler) unjudge(kind string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		userID, err := requestutil.RequiredUserID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		artworkID, err := requestutil.IntParam(request, "artworkID")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if kind == KindFavorite {
			err = handler.service.Unfavorite(request.Context(), userID, artworkID)
		} else {
			err = handler.service.Undislike(request.Context(), userID, artworkID)
		}
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.NoContent(writer)
	}
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorites, meta, err := handler.service.ListFavorites(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, favorites, *meta)
}
