package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blobflow/configs"
)

var DEFAULT_REDIS_POOL_SIZE = 4

const defaultRedisPreferencesKey = "blobflow:preferences"

// RedisConnector keeps all preferences as fields of a single hash.
type RedisConnector struct {
	client *redis.Client
	key    string
}

func NewRedisConnector(cfg *config.RedisConfig) (*RedisConnector, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_REDIS_POOL_SIZE
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = defaultRedisPreferencesKey
	}

	log.Debug().Str("addr", cfg.Addr).Str("key", key).Msg("Connected to Redis preference store")
	return newRedisConnector(client, key), nil
}

func newRedisConnector(client *redis.Client, key string) *RedisConnector {
	return &RedisConnector{client: client, key: key}
}

func (r *RedisConnector) GetPreference(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.HGet(ctx, r.key, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

func (r *RedisConnector) SetPreference(ctx context.Context, key string, value []byte) error {
	if err := r.client.HSet(ctx, r.key, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (r *RedisConnector) DeletePreference(ctx context.Context, key string) error {
	return r.client.HDel(ctx, r.key, key).Err()
}

func (r *RedisConnector) Close() error {
	return r.client.Close()
}
