package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists wizard state across reloads, keyed by session id. A missing
// session loads as (nil, nil); callers start a fresh state.
type Store interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

// DefaultSessionTTL is how long an idle session survives before Redis
// expires it
const DefaultSessionTTL = 7 * 24 * time.Hour

// RedisStore keeps sessions in Redis with a sliding TTL, so abandoned
// sessions expire without a cleanup job.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*State, error) {
	data, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("corrupt wizard session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used in tests and single-node
// development setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*State)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the stored state in place
	clone := *state
	clone.Values = make(map[string]string, len(state.Values))
	for k, v := range state.Values {
		clone.Values[k] = v
	}
	return &clone, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *state
	clone.Values = make(map[string]string, len(state.Values))
	for k, v := range state.Values {
		clone.Values[k] = v
	}
	s.sessions[sessionID] = &clone
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
