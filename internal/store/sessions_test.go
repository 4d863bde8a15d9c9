package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_autofill/internal/engine"
	"github.com/anatolykoptev/go_autofill/internal/engine/profile"
)

// resetSessions gives each test a fresh in-memory store (no Redis).
func resetSessions(ttl time.Duration, maxEntries int) {
	sessions = &sessionStore{ttl: ttl, maxEntries: maxEntries}
}

func TestInitSessions_ReadsEngineConfig(t *testing.T) {
	engine.Init(engine.Config{
		SessionTTL:             time.Hour,
		SessionMaxEntries:      7,
		SessionCleanupInterval: time.Minute,
	})
	InitSessions()
	require.NotNil(t, sessions)
	assert.Equal(t, time.Hour, sessions.ttl)
	assert.Equal(t, 7, sessions.maxEntries)
	assert.Nil(t, sessions.rdb)
}

func TestPutGetProfile(t *testing.T) {
	resetSessions(time.Hour, 100)
	ctx := context.Background()

	p := &profile.Profile{Name: "Jane Smith", Skills: []string{"Python"}}
	id := NewSessionID()
	require.NoError(t, PutProfile(ctx, id, p))

	got, ok := GetProfile(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Jane Smith", got.Name)
	assert.Equal(t, []string{"Python"}, got.Skills)
}

func TestGetProfile_Miss(t *testing.T) {
	resetSessions(time.Hour, 100)
	_, ok := GetProfile(context.Background(), "no-such-session")
	assert.False(t, ok)
}

func TestPutProfile_EmptySessionID(t *testing.T) {
	resetSessions(time.Hour, 100)
	err := PutProfile(context.Background(), "", &profile.Profile{})
	assert.Error(t, err)
}

func TestPutProfile_StoreNotInitialized(t *testing.T) {
	sessions = nil
	err := PutProfile(context.Background(), "id", &profile.Profile{})
	assert.Error(t, err)
}

func TestGetProfile_Expired(t *testing.T) {
	resetSessions(-time.Minute, 100) // entries are born expired
	ctx := context.Background()

	require.NoError(t, PutProfile(ctx, "sess", &profile.Profile{Name: "Jane"}))
	_, ok := GetProfile(ctx, "sess")
	assert.False(t, ok)
}

func TestDeleteProfile(t *testing.T) {
	resetSessions(time.Hour, 100)
	ctx := context.Background()

	require.NoError(t, PutProfile(ctx, "sess", &profile.Profile{Name: "Jane"}))
	DeleteProfile(ctx, "sess")
	_, ok := GetProfile(ctx, "sess")
	assert.False(t, ok)
}

func TestSessionIDs(t *testing.T) {
	resetSessions(time.Hour, 100)
	ctx := context.Background()

	require.NoError(t, PutProfile(ctx, "a", &profile.Profile{}))
	require.NoError(t, PutProfile(ctx, "b", &profile.Profile{}))

	ids := SessionIDs()
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestEviction_MaxEntries(t *testing.T) {
	resetSessions(time.Hour, 3)
	ctx := context.Background()

	require.NoError(t, PutProfile(ctx, "a", &profile.Profile{}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, PutProfile(ctx, "b", &profile.Profile{}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, PutProfile(ctx, "c", &profile.Profile{}))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, PutProfile(ctx, "d", &profile.Profile{}))

	ids := SessionIDs()
	assert.LessOrEqual(t, len(ids), 3)
	assert.NotContains(t, ids, "a") // oldest entry evicted first
}

func TestEviction_MaxEntries_LongTTL(t *testing.T) {
	resetSessions(24*time.Hour, 3)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, PutProfile(ctx, id, &profile.Profile{}))
		time.Sleep(2 * time.Millisecond)
	}

	ids := SessionIDs()
	assert.LessOrEqual(t, len(ids), 3)
	assert.NotContains(t, ids, "a")
	assert.NotContains(t, ids, "b")
}

func TestProfileImmutableInStore(t *testing.T) {
	resetSessions(time.Hour, 100)
	ctx := context.Background()

	p := &profile.Profile{Name: "Jane", Skills: []string{"Python"}}
	require.NoError(t, PutProfile(ctx, "sess", p))

	p.Name = "Changed"
	p.Skills[0] = "Java"

	got, ok := GetProfile(ctx, "sess")
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, []string{"Python"}, got.Skills)
}

func TestNewSessionID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewSessionID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}
