package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetMediaDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for media #%s...", id)

	val, err := c.client.Get(ctx, getCacheKey(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	log.Printf("creating entry in cache for media #%s, for %s...", id, ttl)

	if ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, getCacheKey(id.String()), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for media #%s: %v", id, err)
	}
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting entry in cache for media #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "media:" + id
}
