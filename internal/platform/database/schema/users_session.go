// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package schema

// Refresh-token sessions live in Redis, not PostgreSQL; this file only
// documents the key layout so that the registry stays the single place
// describing storage shapes.
//
// Key:   auth:session:<token-hash>
// Value: JSON-encoded session (user id, user agent, ip, expiry)
// TTL:   RefreshTokenTTL, enforced by Redis itself.
