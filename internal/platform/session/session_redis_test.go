package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yearbook_backend/internal/feature/auth/domain/entity"
	"yearbook_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(token string, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		Token:      token,
		UserID:     1,
		RollNumber: "22A81A0532",
		UserType:   "graduated",
		ShowGuide:  true,
		CreatedAt:  now,
		ExpiresAt:  now.Add(expiresIn),
	}
}

func TestSessionRedis_Create(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		wantErr bool
	}{
		{
			name:    "success: create session",
			session: createTestSession("tok-001", time.Hour),
			wantErr: false,
		},
		{
			name:    "failure: already expired",
			session: createTestSession("tok-expired", -time.Hour),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := setupTestRedis(t)
			store := NewSessionRedis(client, "session")

			err := store.Create(context.Background(), tt.session)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				data, err := client.Get(context.Background(), store.sessionKey(tt.session.Token)).Result()
				assert.NoError(t, err)
				assert.NotEmpty(t, data)
			}
		})
	}
}

func TestSessionRedis_FindByToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewSessionRedis(client, "session")
		ctx := context.Background()

		require.NoError(t, store.Create(ctx, createTestSession("tok-find", time.Hour)))

		got, err := store.FindByToken(ctx, "tok-find")
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.UserID)
		assert.Equal(t, "graduated", got.UserType)
		assert.True(t, got.ShowGuide)
	})

	t.Run("unknown token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewSessionRedis(client, "session")

		_, err := store.FindByToken(context.Background(), "nope")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("expired by TTL", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		store := NewSessionRedis(client, "session")
		ctx := context.Background()

		require.NoError(t, store.Create(ctx, createTestSession("tok-ttl", time.Minute)))
		mr.FastForward(2 * time.Minute)

		_, err := store.FindByToken(ctx, "tok-ttl")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionRedis(client, "session")
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, createTestSession("tok-del", time.Hour)))
	require.NoError(t, store.Delete(ctx, "tok-del"))

	_, err := store.FindByToken(ctx, "tok-del")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "tok-del"), usecase.ErrSessionNotFound)
}

func TestSessionRedis_ClearGuide(t *testing.T) {
	t.Run("drops the flag and keeps the session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewSessionRedis(client, "session")
		ctx := context.Background()

		require.NoError(t, store.Create(ctx, createTestSession("tok-guide", time.Hour)))
		require.NoError(t, store.ClearGuide(ctx, "tok-guide"))

		got, err := store.FindByToken(ctx, "tok-guide")
		require.NoError(t, err)
		assert.False(t, got.ShowGuide)

		ttl := client.TTL(ctx, store.sessionKey("tok-guide")).Val()
		assert.Greater(t, ttl, time.Duration(0), "session must keep expiring")
	})

	t.Run("unknown token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewSessionRedis(client, "session")

		err := store.ClearGuide(context.Background(), "nope")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("idempotent when already cleared", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewSessionRedis(client, "session")
		ctx := context.Background()

		s := createTestSession("tok-idem", time.Hour)
		s.ShowGuide = false
		require.NoError(t, store.Create(ctx, s))

		assert.NoError(t, store.ClearGuide(ctx, "tok-idem"))
	})
}
