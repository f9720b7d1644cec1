package progress

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// entryTTL keeps finished rows readable for a day before they expire.
const entryTTL = 24 * time.Hour

// RedisTracker persists progress in Redis; rows survive process restarts.
type RedisTracker struct {
	client *redis.Client
}

// NewRedisTracker connects to Redis and verifies the connection.
func NewRedisTracker(ctx context.Context, addr, password string) (*RedisTracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisTracker{client: client}, nil
}

// Init implements Tracker.
func (t *RedisTracker) Init(ctx context.Context, workspaceID, jobType string, total int) error {
	return t.Update(ctx, workspaceID, jobType, Entry{
		Status: StatusRunning,
		Total:  total,
	})
}

// Update implements Tracker.
func (t *RedisTracker) Update(ctx context.Context, workspaceID, jobType string, entry Entry) error {
	clamp(&entry)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return t.client.Set(ctx, key(workspaceID, jobType), data, entryTTL).Err()
}

// Get implements Tracker.
func (t *RedisTracker) Get(ctx context.Context, workspaceID, jobType string) (*Entry, error) {
	data, err := t.client.Get(ctx, key(workspaceID, jobType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Clear implements Tracker.
func (t *RedisTracker) Clear(ctx context.Context, workspaceID, jobType string) error {
	return t.client.Del(ctx, key(workspaceID, jobType)).Err()
}

// Close releases the connection pool.
func (t *RedisTracker) Close() error {
	return t.client.Close()
}
