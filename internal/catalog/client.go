// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/emsager/aicdiscovery/internal/platform/constants"
)

// fields is the provider-side projection requested on every search call.
// Narrowing the projection keeps response pages small; everything the
// eligibility filter needs is listed here.
const fields = "id,title,artist_title,image_id,dimensions,medium_display,date_display,date_start,date_end,artist_display"

// Fetcher fetches one search page. Implemented by Client and by the
// circuit-breaker wrapper.
type Fetcher interface {
	FetchPage(ctx context.Context, query PageQuery) ([]RawRecord, error)
}

// Client talks to the artworks search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: constants.CatalogRequestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// FetchPage performs one search call. An empty data array is a success
// (the caller treats it as "no more results"); any non-200 status or
// transport failure comes back as a typed *Error. No retries happen
// here.
func (client *Client) FetchPage(ctx context.Context, query PageQuery) ([]RawRecord, error) {
	endpoint, err := url.Parse(client.baseURL + "/artworks/search")
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: err.Error()}
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("limit", strconv.Itoa(query.Limit))
	values.Set("fields", fields)
	if len(query.ExcludedIDs) > 0 {
		values.Set("excluded_ids", joinIDs(query.ExcludedIDs))
	}
	endpoint.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: err.Error()}
	}
	request.Header.Set("AIC-User-Agent", client.userAgent)
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Message: err.Error()}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &Error{Kind: KindStatus, Status: response.StatusCode}
	}

	var envelope searchResponse
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return nil, &Error{Kind: KindConnection, Message: fmt.Sprintf("decode response: %s", err)}
	}

	return envelope.Data, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

// ImageURLBuilder derives display image URLs from provider image ids
// using the IIIF Image API URL pattern.
type ImageURLBuilder struct {
	baseURL string
}

func NewImageURLBuilder(baseURL string) *ImageURLBuilder {
	return &ImageURLBuilder{baseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns the full-size rendition URL for an image id, or nil when
// the record carries no image.
func (b *ImageURLBuilder) URL(imageID *string) *string {
	if imageID == nil || *imageID == "" {
		return nil
	}
	u := fmt.Sprintf("%s/%s/full/843,/0/default.jpg", b.baseURL, *imageID)
	return &u
}
