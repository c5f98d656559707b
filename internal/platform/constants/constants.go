// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

/*
Package constants centralizes immutable values shared across layers.

It covers server timing, rate limiting, discovery tuning, and the
cross-cutting header and field names, so that magic numbers and strings
stay out of business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "aic-discovery-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out response writes.
	//
	// A discovery run may page through the catalog several times before the
	// quota fills, so this is deliberately generous.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout is the maximum time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for one request lifecycle,
	// including all outbound catalog calls it makes.
	GlobalRequestTimeout = 60 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed per IP.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often idle IP entries are purged.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client may idle before its entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Discovery

const (
	// DiscoveryQuota is the target number of eligible, persisted artworks
	// for a single discovery invocation.
	DiscoveryQuota = 50

	// DiscoveryPageSize is the number of raw records requested per catalog page.
	DiscoveryPageSize = 100

	// CatalogRequestTimeout bounds a single catalog page fetch.
	CatalogRequestTimeout = 15 * time.Second

	// DiscoveryMaxPages caps catalog paging for one invocation so a
	// sparse century cannot turn into an unbounded crawl.
	DiscoveryMaxPages = 25
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim stamped into access tokens.
	AuthIssuer = "aicdiscovery.app"

	// RefreshTokenCookieName is the cookie that carries the refresh token.
	RefreshTokenCookieName = "refresh_token"

	// RefreshTokenCookiePath scopes the refresh cookie to the auth routes.
	RefreshTokenCookiePath = "/api/v1/auth"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData   = "data"
	FieldMeta   = "meta"
	FieldError  = "error"
	FieldCode   = "code"
	FieldNotice = "notice"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Database Schemas

const (
	SchemaCore     = "core"
	SchemaUsers    = "users"
	SchemaJudgment = "judgment"
)

// # Redis Prefixes

const (
	RedisPrefixSession = "auth:session:"
)
