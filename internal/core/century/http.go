// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package century

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emsager/aicdiscovery/internal/platform/respond"
)

// Handler serves the century reference endpoints (signup choices).
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCenturies)
	return router
}

func (handler *Handler) listCenturies(writer http.ResponseWriter, request *http.Request) {
	centuries, err := handler.repo.ListCenturies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, centuries)
}
