package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "erp:cache:"

// RedisCache stores cache regions in Redis so that several instances share
// them. Keys have the form <prefix><region>:<id> and expire after the
// region's TTL. Capacity is left to the server's eviction policy.
type RedisCache struct {
	client    *redis.Client
	registry  *Registry
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisCache connects to Redis and creates a cache over it
func NewRedisCache(cfg RedisConfig, reg *Registry) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCacheWithClient(client, reg, cfg.KeyPrefix), nil
}

// NewRedisCacheWithClient creates a cache with an existing Redis client
func NewRedisCacheWithClient(client *redis.Client, reg *Registry, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCache{
		client:    client,
		registry:  reg,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value stored under key in region
func (c *RedisCache) Get(ctx context.Context, region string, key int64) ([]byte, bool, error) {
	if _, err := c.registry.Policy(region); err != nil {
		return nil, false, err
	}
	v, err := c.client.Get(ctx, c.key(region, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s/%d: %w", region, key, err)
	}
	return v, true, nil
}

// Set stores value under key in region with the region's TTL
func (c *RedisCache) Set(ctx context.Context, region string, key int64, value []byte) error {
	p, err := c.registry.Policy(region)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(region, key), value, p.TTL).Err(); err != nil {
		return fmt.Errorf("failed to write %s/%d: %w", region, key, err)
	}
	return nil
}

// Evict removes key from region
func (c *RedisCache) Evict(ctx context.Context, region string, key int64) error {
	if _, err := c.registry.Policy(region); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.key(region, key)).Err(); err != nil {
		return fmt.Errorf("failed to evict %s/%d: %w", region, key, err)
	}
	return nil
}

// Clear removes every key of region. It scans instead of using KEYS so a
// large keyspace does not block the server.
func (c *RedisCache) Clear(ctx context.Context, region string) error {
	if _, err := c.registry.Policy(region); err != nil {
		return err
	}
	iter := c.client.Scan(ctx, 0, c.keyPrefix+region+":*", 200).Iterator()
	batch := make([]string, 0, 200)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to clear %s: %w", region, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", region, err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to clear %s: %w", region, err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(region string, id int64) string {
	return c.keyPrefix + region + ":" + strconv.FormatInt(id, 10)
}
