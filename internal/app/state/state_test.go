package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/repositories"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/kvstore"
	"github.com/yigit/campushub/internal/seed"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newState(t *testing.T, store *kvstore.MemoryStore) *AppState {
	t.Helper()
	repo := repositories.NewStateRepository(store, zerolog.Nop(), nil)
	return New(repo, seed.NewStaticProvider(clock), clock, zerolog.Nop(), nil)
}

func initialized(t *testing.T, store *kvstore.MemoryStore) *AppState {
	t.Helper()
	s := newState(t, store)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestInitializeFromEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	s := initialized(t, store)

	defaults := seed.NewStaticProvider(clock).Defaults()
	snap, err := s.Snapshot()
	require.NoError(t, err)
	if diff := cmp.Diff(defaults, snap.AppData); diff != "" {
		t.Fatalf("state differs from seed (-want +got):\n%s", diff)
	}

	for _, key := range models.TrackedKeys {
		raw, err := store.Get(ctx, string(key))
		require.NoError(t, err, "key %s not persisted", key)
		want, err := json.Marshal(defaults.Field(key))
		require.NoError(t, err)
		require.JSONEq(t, string(want), string(raw), "key %s", key)
	}
}

func TestInitializeRunsOnce(t *testing.T) {
	s := initialized(t, kvstore.NewMemoryStore())
	require.ErrorIs(t, s.Initialize(context.Background()), apperrors.ErrAlreadyInitialized)
}

func TestUninitializedState(t *testing.T) {
	s := newState(t, kvstore.NewMemoryStore())
	_, err := s.Snapshot()
	require.ErrorIs(t, err, apperrors.ErrNotInitialized)
	require.ErrorIs(t, s.Block(context.Background(), "user2"), apperrors.ErrNotInitialized)
}

func TestInitializeKeepsPersistedAndReplacesCorrupted(t *testing.T) {
	store := kvstore.NewMemoryStore()
	store.Put("blockedUsers", []byte(`["user3"]`))
	store.Put("chatMessages", []byte(`not json`))
	store.Put("achievements", []byte(`[{"id":"x","progress":150}]`))

	s := initialized(t, store)
	snap, err := s.Snapshot()
	require.NoError(t, err)

	require.Equal(t, models.BlockedUsers{"user3"}, snap.BlockedUsers)
	require.Len(t, snap.ChatMessages, 10)
	require.Len(t, snap.Achievements, 8)

	raw, err := store.Get(context.Background(), "chatMessages")
	require.NoError(t, err)
	require.True(t, json.Valid(raw))
}

func TestMutateWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	s := initialized(t, store)

	require.NoError(t, s.Block(ctx, "user4"))
	require.True(t, s.IsBlocked("user4"))

	raw, err := store.Get(ctx, "blockedUsers")
	require.NoError(t, err)
	require.JSONEq(t, `["user4"]`, string(raw))

	// A fresh state over the same store sees the mutation.
	reloaded := initialized(t, store)
	require.True(t, reloaded.IsBlocked("user4"))
}

func TestMutatePersistFailureLeavesMemoryUnchanged(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	s := initialized(t, store)

	store.FailWrites = errors.New("quota exceeded")
	err := s.AppendChatMessage(ctx, models.ChatMessage{ID: "m-new", UserID: "user1", Text: "hi"})
	require.ErrorIs(t, err, apperrors.ErrPersistFailed)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 10)
}

func TestMutateDiscardsOtherCollections(t *testing.T) {
	ctx := context.Background()
	s := initialized(t, kvstore.NewMemoryStore())

	err := s.Mutate(ctx, models.KeyBlockedUsers, func(d *models.AppData) error {
		d.BlockedUsers = d.BlockedUsers.With("user2")
		d.ChatMessages = nil
		return nil
	})
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 10)
	require.Equal(t, models.BlockedUsers{"user2"}, snap.BlockedUsers)
}

func TestReact(t *testing.T) {
	ctx := context.Background()
	s := initialized(t, kvstore.NewMemoryStore())

	t.Run("absent kind starts at one", func(t *testing.T) {
		msg, found, err := s.React(ctx, "msg3", "like")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 1, msg.Reactions["like"])

		msg, _, err = s.React(ctx, "msg3", "like")
		require.NoError(t, err)
		require.Equal(t, 2, msg.Reactions["like"])
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before, err := s.Snapshot()
		require.NoError(t, err)

		_, found, err := s.React(ctx, "nope", "like")
		require.NoError(t, err)
		require.False(t, found)

		after, err := s.Snapshot()
		require.NoError(t, err)
		require.Equal(t, before.ChatMessages, after.ChatMessages)
	})
}

func TestBlockSetSemantics(t *testing.T) {
	ctx := context.Background()
	s := initialized(t, kvstore.NewMemoryStore())

	require.NoError(t, s.Block(ctx, "user5"))
	require.NoError(t, s.Block(ctx, "user5"))
	removed, err := s.Unblock(ctx, "user9")
	require.NoError(t, err)
	require.False(t, removed)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, models.BlockedUsers{"user5"}, snap.BlockedUsers)

	removed, err = s.Unblock(ctx, "user5")
	require.NoError(t, err)
	require.True(t, removed)
	require.False(t, s.IsBlocked("user5"))
}

func TestAddAnswer(t *testing.T) {
	ctx := context.Background()
	s := initialized(t, kvstore.NewMemoryStore())

	require.NoError(t, s.AddAnswer(ctx, "q3", models.Answer{ID: "a-new", UserID: "user1", Content: "Try the career center."}))
	snap, err := s.Snapshot()
	require.NoError(t, err)
	q3 := snap.QnaPosts[snap.QnaPosts.Index("q3")]
	require.Len(t, q3.Answers, 1)
	require.Equal(t, 16, q3.AnswerCount)

	err = s.AddAnswer(ctx, "missing", models.Answer{ID: "a-x"})
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := initialized(t, kvstore.NewMemoryStore())
	snap, err := s.Snapshot()
	require.NoError(t, err)

	snap.ChatMessages[0].Reactions["like"] = 100
	snap.BlockedUsers = append(snap.BlockedUsers, "user2")

	again, err := s.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 3, again.ChatMessages[0].Reactions["like"])
	require.False(t, s.IsBlocked("user2"))
}

func TestUserByIDFallsBackToCurrentUser(t *testing.T) {
	s := initialized(t, kvstore.NewMemoryStore())

	u, ok := s.UserByID("user7")
	require.True(t, ok)
	require.Equal(t, "James Brown", u.Name)

	u, ok = s.UserByID("ghost")
	require.False(t, ok)
	require.Equal(t, "user1", u.ID)
}

func TestResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	s := initialized(t, store)

	require.NoError(t, s.Block(ctx, "user2"))
	require.NoError(t, s.AppendChatMessage(ctx, models.ChatMessage{ID: "m-new", UserID: "user1", Text: "hello"}))
	store.Put("strayKey", []byte(`{}`))

	require.NoError(t, s.Reset(ctx))

	_, err := store.Get(ctx, "strayKey")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	if diff := cmp.Diff(seed.NewStaticProvider(clock).Defaults(), snap.AppData); diff != "" {
		t.Fatalf("reset state differs from seed (-want +got):\n%s", diff)
	}
	require.Equal(t, len(models.TrackedKeys), store.Len())
}
