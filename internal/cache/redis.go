package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// retention keeps entries available well past the freshness window so the
// stale-fallback tier has something to serve. It bounds Redis memory, not
// freshness.
const retention = 24 * time.Hour

const keyPrefix = "warta:news:"

// Redis is a Store backed by a Redis instance, for running several server
// processes against one shared cache.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	val, err := r.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return Entry{}, false, nil
	} else if err != nil {
		return Entry{}, false, err
	}

	var entry Entry
	if err := json.Unmarshal(val, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decoding cache entry: %w", err)
	}
	return entry, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+key, data, retention).Err()
}
