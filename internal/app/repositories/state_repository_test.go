package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/kvstore"
)

func TestStateRepositoryRead(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		repo := NewStateRepository(kvstore.NewMemoryStore(), zerolog.Nop(), nil)
		var msgs models.ChatMessages
		require.False(t, repo.Read(ctx, models.KeyChatMessages, &msgs))
	})

	t.Run("valid value", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.Put("chatMessages", []byte(`[{"id":"m1","userId":"user2","text":"hi","timestamp":5,"reactions":{"like":2}}]`))
		repo := NewStateRepository(store, zerolog.Nop(), nil)

		var msgs models.ChatMessages
		require.True(t, repo.Read(ctx, models.KeyChatMessages, &msgs))
		require.Len(t, msgs, 1)
		require.Equal(t, "user2", msgs[0].UserID)
		require.Equal(t, 2, msgs[0].Reactions["like"])
	})

	t.Run("corrupted JSON", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.Put("hostels", []byte(`[{"id":`))
		repo := NewStateRepository(store, zerolog.Nop(), nil)

		var hostels models.Hostels
		require.False(t, repo.Read(ctx, models.KeyHostels, &hostels))
	})

	t.Run("wrong shape", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.Put("blockedUsers", []byte(`{"user2":true}`))
		repo := NewStateRepository(store, zerolog.Nop(), nil)

		var blocked models.BlockedUsers
		require.False(t, repo.Read(ctx, models.KeyBlockedUsers, &blocked))
	})

	t.Run("fails validation", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.Put("achievements", []byte(`[{"id":"ach1","name":"Early Bird","progress":100,"earned":true}]`))
		repo := NewStateRepository(store, zerolog.Nop(), nil)

		var achievements models.Achievements
		require.False(t, repo.Read(ctx, models.KeyAchievements, &achievements))
	})

	t.Run("backend error", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Close())
		repo := NewStateRepository(store, zerolog.Nop(), nil)

		var user models.User
		require.False(t, repo.Read(ctx, models.KeyCurrentUser, &user))
	})
}

func TestStateRepositoryWriteAndClear(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewStateRepository(store, zerolog.Nop(), nil)

	require.NoError(t, repo.Write(ctx, models.KeyBlockedUsers, models.BlockedUsers{"user3"}))
	raw, err := store.Get(ctx, "blockedUsers")
	require.NoError(t, err)
	require.JSONEq(t, `["user3"]`, string(raw))

	store.Put("legacyKey", []byte(`1`))
	require.NoError(t, repo.Clear(ctx))
	require.Zero(t, store.Len())

	boom := errors.New("disk full")
	store.FailWrites = boom
	err = repo.Write(ctx, models.KeyBlockedUsers, models.BlockedUsers{})
	require.ErrorIs(t, err, boom)
}
