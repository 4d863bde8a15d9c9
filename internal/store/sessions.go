// Package store holds parsed profiles between requests and tracks submitted
// applications. Sessions live in a 2-tier store: L1 in-memory + L2 Redis.
// L1 is fast but lost on restart. L2 survives restarts.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

var sessions *sessionStore

// sessionStore implements L1 (memory) + L2 (Redis) profile storage.
type sessionStore struct {
	l1              sync.Map      // session id → *sessionEntry
	rdb             *redis.Client // nil if Redis unavailable
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
}

type sessionEntry struct {
	data      []byte
	expiresAt time.Time
}

const redisKeyPrefix = "af:sess:"

// InitSessions sets up the session store from engine.Cfg. An empty RedisURL
// disables L2. Call after engine.Init.
func InitSessions() {
	s := &sessionStore{
		ttl:             engine.Cfg.SessionTTL,
		maxEntries:      engine.Cfg.SessionMaxEntries,
		cleanupInterval: engine.Cfg.SessionCleanupInterval,
	}

	if engine.Cfg.RedisURL != "" {
		opts, err := redis.ParseURL(engine.Cfg.RedisURL)
		if err != nil {
			slog.Warn("sessions: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("sessions: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				s.rdb = rdb
				slog.Info("sessions: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	sessions = s
	slog.Info("sessions: initialized", slog.Duration("ttl", s.ttl), slog.Bool("redis", s.rdb != nil), slog.Int("max_entries", s.maxEntries))

	go s.cleanupLoop()
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// PutProfile stores a profile under sessionID. Profiles are write-once: a
// session's profile is replaced wholesale, never mutated in place.
func PutProfile(ctx context.Context, sessionID string, p *profile.Profile) error {
	if sessions == nil {
		return errors.New("session store not initialized")
	}
	if sessionID == "" {
		return errors.New("empty session id")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	sessions.evictIfNeeded()

	sessions.l1.Store(sessionID, &sessionEntry{
		data:      data,
		expiresAt: time.Now().Add(sessions.ttl),
	})

	if sessions.rdb != nil {
		if err := sessions.rdb.Set(ctx, redisKeyPrefix+sessionID, data, sessions.ttl).Err(); err != nil {
			slog.Debug("sessions: L2 set failed", slog.Any("error", err))
		}
	}
	return nil
}

// GetProfile tries L1, then L2. On L2 hit, populates L1.
func GetProfile(ctx context.Context, sessionID string) (*profile.Profile, bool) {
	if sessions == nil {
		engine.IncrSessionMisses()
		return nil, false
	}

	if val, ok := sessions.l1.Load(sessionID); ok {
		entry := val.(*sessionEntry)
		if time.Now().Before(entry.expiresAt) {
			var p profile.Profile
			if json.Unmarshal(entry.data, &p) == nil {
				engine.IncrSessionHits()
				return &p, true
			}
		}
		sessions.l1.Delete(sessionID) // expired or corrupt
	}

	if sessions.rdb != nil {
		data, err := sessions.rdb.Get(ctx, redisKeyPrefix+sessionID).Bytes()
		if err == nil {
			var p profile.Profile
			if json.Unmarshal(data, &p) == nil {
				engine.IncrSessionHits()
				sessions.l1.Store(sessionID, &sessionEntry{
					data:      data,
					expiresAt: time.Now().Add(sessions.ttl),
				})
				return &p, true
			}
		}
	}

	engine.IncrSessionMisses()
	return nil, false
}

// DeleteProfile removes a session from both tiers.
func DeleteProfile(ctx context.Context, sessionID string) {
	if sessions == nil {
		return
	}
	sessions.l1.Delete(sessionID)
	if sessions.rdb != nil {
		sessions.rdb.Del(ctx, redisKeyPrefix+sessionID)
	}
}

// SessionIDs lists the non-expired sessions in L1.
func SessionIDs() []string {
	ids := []string{}
	if sessions == nil {
		return ids
	}
	now := time.Now()
	sessions.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*sessionEntry); ok && now.Before(entry.expiresAt) {
			ids = append(ids, key.(string))
		}
		return true
	})
	return ids
}

// evictIfNeeded removes entries when L1 exceeds maxEntries.
// Removes expired entries first, then oldest entries if still over limit.
func (s *sessionStore) evictIfNeeded() {
	if s.maxEntries <= 0 {
		return
	}

	count := 0
	s.l1.Range(func(_, _ any) bool {
		count++
		return true
	})

	if count < s.maxEntries {
		return
	}

	// Phase 1: remove expired
	now := time.Now()
	s.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*sessionEntry); ok && now.After(entry.expiresAt) {
			s.l1.Delete(key)
			count--
		}
		return count >= s.maxEntries
	})

	if count < s.maxEntries {
		return
	}

	// Phase 2: remove oldest entries until under limit
	var oldest struct {
		key any
		at  time.Time
	}
	for count >= s.maxEntries {
		oldest.key = nil
		s.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*sessionEntry); ok {
				// Earlier expiry = older entry (since expiry = createdAt + ttl)
				if oldest.key == nil || entry.expiresAt.Before(oldest.at) {
					oldest.key = key
					oldest.at = entry.expiresAt
				}
			}
			return true
		})
		if oldest.key == nil {
			break
		}
		s.l1.Delete(oldest.key)
		count--
	}
}

// cleanupLoop periodically removes expired L1 entries.
func (s *sessionStore) cleanupLoop() {
	interval := s.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*sessionEntry); ok && now.After(entry.expiresAt) {
				s.l1.Delete(key)
			}
			return true
		})
	}
}
