// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package cache keeps rendered localized catalogs in Redis.

The public catalog endpoint is by far the hottest path of the API, and the
payload only changes when an admin edits a category or product. One cache
entry is kept per normalized language code; every catalog mutation drops
all entries at once.
*/
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
)

// DefaultTTL bounds staleness if an invalidation is ever missed.
const DefaultTTL = 15 * time.Minute

// LocalizedCatalog caches rendered catalog JSON per language.
type LocalizedCatalog struct {
	client *redis.Client
}

// NewLocalizedCatalog creates a cache backed by the given Redis client.
func NewLocalizedCatalog(client *redis.Client) *LocalizedCatalog {
	return &LocalizedCatalog{client: client}
}

// # Cache Operations

// Get returns the cached catalog payload for a normalized language code.
// The second return is false on a cache miss.
func (cache *LocalizedCatalog) Get(context context.Context, language string) ([]byte, bool, error) {
	payload, err := cache.client.Get(context, cacheKey(language)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_catalog_get_failed: %w", err)
	}

	return payload, true, nil
}

// Set stores a rendered catalog payload for a normalized language code.
func (cache *LocalizedCatalog) Set(context context.Context, language string, payload []byte) error {
	if err := cache.client.Set(context, cacheKey(language), payload, DefaultTTL).Err(); err != nil {
		return fmt.Errorf("redis_catalog_set_failed: %w", err)
	}

	return nil
}

// Invalidate drops the cached catalog for every supported language.
// Called after any category or product mutation.
func (cache *LocalizedCatalog) Invalidate(context context.Context) error {
	keys := make([]string, 0, len(constants.SupportedLanguages))
	for _, language := range constants.SupportedLanguages {
		keys = append(keys, cacheKey(language))
	}

	if err := cache.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_catalog_invalidate_failed: %w", err)
	}

	return nil
}

func cacheKey(language string) string {
	return constants.RedisPrefixCatalog + language
}
