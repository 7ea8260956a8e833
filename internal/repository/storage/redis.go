package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Client *redis.Client
}

// NewRedisStorage - connects to the Redis database db at addr and checks it answers.
func NewRedisStorage(ctx context.Context, addr string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &RedisStorage{Client: client}, nil
}

// Reset - drops every key of the selected database.
func (that *RedisStorage) Reset(ctx context.Context) error {
	if err := that.Client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush Redis database: %w", err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	return that.Client.Close()
}
