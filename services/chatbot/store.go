// File: services/chatbot/store.go
package chatbot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"visado/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:sess:"

// SessionStore holds per-caller conversation state between turns. Missing
// or expired sessions come back as a fresh main-menu session.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Set(ctx context.Context, sessionID string, sess *models.ChatSession) error
	Clear(ctx context.Context, sessionID string) error
}

// NewSession returns a blank session positioned at the main menu.
func NewSession() *models.ChatSession {
	return &models.ChatSession{State: StateMainMenu}
}

// RedisSessionStore keeps sessions as JSON under a TTL so abandoned
// conversations evaporate on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return NewSession(), nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.ChatSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, sess *models.ChatSession) error {
	key := sessionPrefix + sessionID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	key := sessionPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemorySessionStore is the default store: a mutex-guarded map with
// per-entry expiry and a background sweeper.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySessionEntry
	ttl      time.Duration
}

type memorySessionEntry struct {
	sess      *models.ChatSession
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	store := &MemorySessionStore{
		sessions: make(map[string]*memorySessionEntry),
		ttl:      ttl,
	}
	go store.sweep()
	return store
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return NewSession(), nil
	}
	// Hand out a copy so callers never mutate stored state between turns.
	copied := *entry.sess
	return &copied, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID string, sess *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	s.sessions[sessionID] = &memorySessionEntry{
		sess:      &copied,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemorySessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, entry := range s.sessions {
			if now.After(entry.expiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
