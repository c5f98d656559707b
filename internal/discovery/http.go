// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package discovery

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/emsager/aicdiscovery/internal/platform/request"
	"github.com/emsager/aicdiscovery/internal/platform/respond"
)

// Handler serves the discovery endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.discover)
	router.Get("/surprise", handler.surprise)
	return router
}

func (handler *Handler) discover(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, handler.service.Discover)
}

func (handler *Handler) surprise(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, handler.service.SurpriseMe)
}

func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request, invoke func(ctx context.Context, userID string) (*Batch, error)) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	batch, err := invoke(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if batch.Notice != "" {
		respond.Partial(writer, batch, batch.Notice)
		return
	}

	respond.OK(writer, batch)
}
