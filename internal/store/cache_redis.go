// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "dineo:session:"

// RedisSessionCache is the Redis-backed implementation of [SessionCache].
// Entries expire together with the session they describe.
type RedisSessionCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionCache connects to redisURL and pings it.
func NewRedisSessionCache(ctx context.Context, redisURL string, log *logger.Logger) (*RedisSessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisSessionCache").Msg("redis ping failed")
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	log.Info().Str("func", "NewRedisSessionCache").Msg("connected to redis successfully")

	return &RedisSessionCache{client: client, logger: log}, nil
}

// Close releases the Redis connection pool.
func (c *RedisSessionCache) Close() error {
	return c.client.Close()
}

func (c *RedisSessionCache) GetSession(ctx context.Context, id string) (models.StoredSession, error) {
	raw, err := c.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.StoredSession{}, ErrCacheMiss
		}
		return models.StoredSession{}, fmt.Errorf("redis get: %w", err)
	}

	var session models.StoredSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.StoredSession{}, fmt.Errorf("decode cached session: %w", err)
	}

	return session, nil
}

// SetSession is a no-op for sessions that already expired.
func (c *RedisSessionCache) SetSession(ctx context.Context, session models.StoredSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := c.client.Set(ctx, sessionKeyPrefix+session.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *RedisSessionCache) DeleteSession(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// nopSessionCache is used when no Redis URL is configured. Every lookup is a
// miss.
type nopSessionCache struct{}

func NewNopSessionCache() SessionCache {
	return nopSessionCache{}
}

func (nopSessionCache) GetSession(context.Context, string) (models.StoredSession, error) {
	return models.StoredSession{}, ErrCacheMiss
}

func (nopSessionCache) SetSession(context.Context, models.StoredSession) error { return nil }

func (nopSessionCache) DeleteSession(context.Context, string) error { return nil }
