package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/travelpackages/config"
	"github.com/Domenick1991/travelpackages/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client       *redis.Client
	catalogueTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogueTTL: cfg.CatalogueTTL(),
	}
}

// GetPackages returns nil, nil on a cache miss. Entries are keyed by catalogue
// version, so a write never needs to invalidate; old versions expire by TTL.
func (c *RedisCache) GetPackages(ctx context.Context, version string) ([]domain.Package, error) {
	data, err := c.client.Get(ctx, catalogueKey(version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var packages []domain.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *RedisCache) SetPackages(ctx context.Context, version string, packages []domain.Package) error {
	payload, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogueKey(version), payload, c.catalogueTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func catalogueKey(version string) string {
	return "cache:packages:" + version
}
