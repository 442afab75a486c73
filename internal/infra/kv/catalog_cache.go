package kv

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"parkcompare/internal/domain/catalog"

	"github.com/redis/go-redis/v9"
)

// CatalogCache keeps the per-airport company listing warm. The compare
// page hits this on every search, so misses fall through to Postgres and
// repopulate. A cache error is treated as a miss by callers.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func airportKey(airport string) string {
	return "cache:companies:" + strings.ToLower(strings.TrimSpace(airport))
}

func (c *CatalogCache) GetCompanies(ctx context.Context, airport string) ([]*catalog.Company, error) {
	data, err := c.client.Get(ctx, airportKey(airport)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var companies []*catalog.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *CatalogCache) SetCompanies(ctx context.Context, airport string, companies []*catalog.Company) error {
	payload, err := json.Marshal(companies)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportKey(airport), payload, c.ttl).Err()
}

// InvalidateAirport drops the cached listing after an admin edit.
func (c *CatalogCache) InvalidateAirport(ctx context.Context, airport string) error {
	return c.client.Del(ctx, airportKey(airport)).Err()
}
