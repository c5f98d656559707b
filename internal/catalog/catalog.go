// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package catalog is the HTTP client for the Art Institute of Chicago
public API.

The client fetches one search page at a time and never retries; paging
and retry policy belong to the discovery orchestrator. Provider-side
filters (excluded ids) are sent as an optimization but are advisory
only, every record is re-validated locally after fetching.
*/
package catalog

import "fmt"

// ErrorKind distinguishes a rejected request from one that never got an
// answer.
type ErrorKind int

const (
	// KindStatus means the provider answered with a non-200 status.
	KindStatus ErrorKind = iota
	// KindConnection means the request failed before a status arrived
	// (transport error, timeout, open circuit).
	KindConnection
)

// Error is a typed fetch failure.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("catalog: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("catalog: connection failed: %s", e.Message)
}

// RawRecord is one artwork as the provider returns it, prior to
// eligibility filtering. Nullable provider fields are pointers so that
// "absent" and "zero" stay distinguishable.
type RawRecord struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	ArtistTitle   *string `json:"artist_title"`
	ArtistDisplay *string `json:"artist_display"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
	DateDisplay   *string `json:"date_display"`
	MediumDisplay *string `json:"medium_display"`
	Dimensions    *string `json:"dimensions"`
	ImageID       *string `json:"image_id"`
}

// PageQuery describes one search page request.
type PageQuery struct {
	Page  int
	Limit int

	// ExcludedIDs is forwarded to the provider as a comma-joined list.
	// The provider may ignore it; callers must still filter locally.
	ExcludedIDs []int
}

// searchResponse is the provider's search envelope. Fields beyond data
// (pagination info, config) are not needed and left undecoded.
type searchResponse struct {
	Data []RawRecord `json:"data"`
}
