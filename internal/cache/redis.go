package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// SetJSON stores v under key as JSON with the given expiration.
func (r *RedisClient) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store value in Redis: %w", err)
	}
	return nil
}

// GetJSON decodes the value under key into dst. The bool is false when the
// key does not exist.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get value from Redis: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return true, nil
}

// GetStatus reports connection pool stats for the health endpoint.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"idle_conns":   stats.IdleConns,
	}, nil
}

// FoodSearchKey normalizes the query so "Rice " and "rice" share an entry.
func FoodSearchKey(query string) string {
	return "food:search:" + strings.ToLower(strings.TrimSpace(query))
}

func FoodDetailKey(fdcID int64) string {
	return fmt.Sprintf("food:detail:%d", fdcID)
}
