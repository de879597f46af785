package store

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-redis/redis/v8"

	"github.com/lox/sheepshead/internal/session"
)

// RedisStore keeps the snapshot under a single Redis key
type RedisStore struct {
	client *redis.Client
	key    string
	logger *log.Logger
}

// NewRedisStore connects lazily; the first command dials the server
func NewRedisStore(addr, password string, db int, key string, logger *log.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, key: key, logger: logger.WithPrefix("store")}
}

func (r *RedisStore) Load(ctx context.Context) (session.Snapshot, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		r.logger.Debug("No saved game", "key", r.key)
		return session.Snapshot{}, false, nil
	} else if err != nil {
		return session.Snapshot{}, false, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	snap, ok := decode(r.logger, "redis:"+r.key, data)
	return snap, ok, nil
}

func (r *RedisStore) Save(ctx context.Context, snap session.Snapshot) error {
	data, err := encode(snap)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}

// Close releases the connection pool
func (r *RedisStore) Close() error {
	return r.client.Close()
}
