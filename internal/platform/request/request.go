// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package request provides helpers for extracting data from HTTP requests.

It wraps the router's parameter extraction and JSON body decoding so that
handlers share one error-handling path for malformed input and missing
authentication.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/ctxutil"
	"github.com/emsager/aicdiscovery/internal/platform/sec"
	"github.com/emsager/aicdiscovery/internal/platform/validate"
)

// DecodeJSON reads the request body into target, returning
// [validate.ErrInvalidJSON] when decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// IntParam retrieves a named URL parameter and parses it as an integer.
// Artwork ids are external catalog integers, so this is the common case.
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid numeric identifier", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return id, nil
}

// Claims extracts the authenticated user claims from the request context,
// or nil when the request is anonymous.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the claims.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// RequiredUserID returns the ID of the currently authenticated user.
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
