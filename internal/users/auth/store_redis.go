// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emsager/aicdiscovery/internal/platform/apperr"
	"github.com/emsager/aicdiscovery/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// A session lives under constants.RedisPrefixSession + tokenHash with a
// TTL equal to the refresh window, so expiry needs no sweeper. A
// per-user set of token hashes supports revoking every session at once.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return "auth:user_sessions:" + userID
}

func (repository *RedisSessionRepository) Create(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return apperr.ValidationError("Session expiry must be in the future")
	}

	pipe := repository.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.TokenHash), payload, ttl)
	pipe.SAdd(ctx, userSessionsKey(session.UserID), session.TokenHash)
	pipe.Expire(ctx, userSessionsKey(session.UserID), RefreshTokenTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	return nil
}

func (repository *RedisSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(ctx, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}
	session.TokenHash = tokenHash

	return session, nil
}

func (repository *RedisSessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	session, err := repository.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		// Already gone counts as revoked.
		if apperr.IsAppError(err) {
			return nil
		}
		return err
	}

	pipe := repository.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tokenHash))
	pipe.SRem(ctx, userSessionsKey(session.UserID), tokenHash)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}

	return nil
}

func (repository *RedisSessionRepository) RevokeAll(ctx context.Context, userID string) error {
	hashes, err := repository.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis_session_revoke_all_failed: %w", err)
	}

	pipe := repository.client.TxPipeline()
	for _, tokenHash := range hashes {
		pipe.Del(ctx, sessionKey(tokenHash))
	}
	pipe.Del(ctx, userSessionsKey(userID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis_session_revoke_all_failed: %w", err)
	}

	return nil
}
