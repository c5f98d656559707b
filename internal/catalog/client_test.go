// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsager/aicdiscovery/internal/catalog"
)

const testUserAgent = "AIC Discovery (emsager7@gmail.com)"

/*
TestClient_FetchPage_Success checks request shape and response decoding
against a stub provider.
*/
func TestClient_FetchPage_Success(t *testing.T) {
	var gotRequest *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotRequest = request.Clone(context.Background())
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{
			"data": [
				{"id": 27992, "title": "A Sunday on La Grande Jatte", "artist_title": "Georges Seurat", "date_start": 1884, "date_end": 1886, "image_id": "img-1"},
				{"id": 111628, "title": "Nighthawks", "artist_title": "Edward Hopper", "date_start": 1942, "date_end": 1942}
			]
		}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, testUserAgent)

	records, err := client.FetchPage(context.Background(), catalog.PageQuery{
		Page:        2,
		Limit:       100,
		ExcludedIDs: []int{5, 9},
	})

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 27992, records[0].ID)
	assert.Equal(t, "A Sunday on La Grande Jatte", records[0].Title)
	require.NotNil(t, records[0].DateStart)
	assert.Equal(t, 1884, *records[0].DateStart)
	require.NotNil(t, records[0].ImageID)
	assert.Equal(t, "img-1", *records[0].ImageID)
	assert.Nil(t, records[1].ImageID)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/artworks/search", gotRequest.URL.Path)
	assert.Equal(t, testUserAgent, gotRequest.Header.Get("AIC-User-Agent"))

	query := gotRequest.URL.Query()
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "100", query.Get("limit"))
	assert.Equal(t, "5,9", query.Get("excluded_ids"))
	assert.Contains(t, query.Get("fields"), "artist_title")
	assert.Contains(t, query.Get("fields"), "date_start")
}

/*
TestClient_FetchPage_EmptyData checks that an empty data array is a
success, not an error.
*/
func TestClient_FetchPage_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, testUserAgent)

	records, err := client.FetchPage(context.Background(), catalog.PageQuery{Page: 1, Limit: 100})

	require.NoError(t, err)
	assert.Empty(t, records)
}

/*
TestClient_FetchPage_StatusError checks the typed failure for non-200
responses.
*/
func TestClient_FetchPage_StatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"rate_limited", http.StatusTooManyRequests},
		{"server_error", http.StatusInternalServerError},
		{"not_found", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := catalog.NewClient(server.URL, testUserAgent)

			_, err := client.FetchPage(context.Background(), catalog.PageQuery{Page: 1, Limit: 100})

			require.Error(t, err)
			var fetchErr *catalog.Error
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, catalog.KindStatus, fetchErr.Kind)
			assert.Equal(t, tt.status, fetchErr.Status)
		})
	}
}

/*
TestClient_FetchPage_ConnectionError checks the typed failure when the
provider is unreachable.
*/
func TestClient_FetchPage_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // reachable URL, closed listener

	client := catalog.NewClient(server.URL, testUserAgent)

	_, err := client.FetchPage(context.Background(), catalog.PageQuery{Page: 1, Limit: 100})

	require.Error(t, err)
	var fetchErr *catalog.Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, catalog.KindConnection, fetchErr.Kind)
}

/*
TestImageURLBuilder covers the IIIF URL template and the no-image case.
*/
func TestImageURLBuilder(t *testing.T) {
	builder := catalog.NewImageURLBuilder("https://www.artic.edu/iiif/2/")

	imageID := "1adf2696-8489-499b-cad2-821d7fde4b33"
	url := builder.URL(&imageID)
	require.NotNil(t, url)
	assert.Equal(t, "https://www.artic.edu/iiif/2/1adf2696-8489-499b-cad2-821d7fde4b33/full/843,/0/default.jpg", *url)

	assert.Nil(t, builder.URL(nil))

	empty := ""
	assert.Nil(t, builder.URL(&empty))
}
