package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	config "github.com/inference-gateway/drawbot/config"
	domain "github.com/inference-gateway/drawbot/internal/domain"
)

// RedisStore persists state in Redis with an optional TTL
type RedisStore struct {
	client       *redis.Client
	ttl          time.Duration
	historyLimit int
}

var _ StateStore = (*RedisStore)(nil)

// NewRedisStore connects to Redis
func NewRedisStore(cfg config.RedisConfig, historyLimit int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		DB:       cfg.Database,
		Password: cfg.Password,
		Username: cfg.Username,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisStore(client, time.Duration(cfg.TTL)*time.Second, historyLimit), nil
}

func newRedisStore(client *redis.Client, ttl time.Duration, historyLimit int) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{client: client, ttl: ttl, historyLimit: historyLimit}
}

func stateKey(sessionID string) string {
	return fmt.Sprintf("drawbot:session:%s:state", sessionID)
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("drawbot:session:%s:history", sessionID)
}

// LoadState reads the session key
func (s *RedisStore) LoadState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	data, err := s.client.Get(ctx, stateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewSessionState(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
	}
	state.ID = sessionID
	return &state, nil
}

// SaveState writes the session key
func (s *RedisStore) SaveState(ctx context.Context, state *domain.SessionState) error {
	saved := *state
	saved.UpdatedAt = time.Now()

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", state.ID, err)
	}

	if err := s.client.Set(ctx, stateKey(state.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.ID, err)
	}
	return nil
}

// ResetState deletes the session key
func (s *RedisStore) ResetState(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// AppendHistory pushes onto the session's history list and trims it to the history limit
func (s *RedisStore) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	key := historyKey(entry.SessionID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	if s.historyLimit > 0 {
		pipe.LTrim(ctx, key, 0, int64(s.historyLimit-1))
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

// ListHistory reads the newest entries from the head of the list
func (s *RedisStore) ListHistory(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	items, err := s.client.LRange(ctx, historyKey(sessionID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(items))
	for _, item := range items {
		var e domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Health pings Redis
func (s *RedisStore) Health(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
