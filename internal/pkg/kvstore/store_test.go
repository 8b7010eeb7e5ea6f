package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "currentUser")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "chatMessages", []byte(`[{"id":"msg1"}]`)))
		v, err := s.Get(ctx, "chatMessages")
		require.NoError(t, err)
		require.JSONEq(t, `[{"id":"msg1"}]`, string(v))
	})

	t.Run("overwrite is idempotent", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "blockedUsers", []byte(`["user3"]`)))
		require.NoError(t, s.Set(ctx, "blockedUsers", []byte(`["user3"]`)))
		require.NoError(t, s.Set(ctx, "blockedUsers", []byte(`[]`)))
		v, err := s.Get(ctx, "blockedUsers")
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(v))
	})

	t.Run("keys lists only stored keys", func(t *testing.T) {
		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"chatMessages", "blockedUsers"}, keys)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "chatMessages"))
		_, err := s.Get(ctx, "chatMessages")
		require.ErrorIs(t, err, ErrNotFound)
		require.NoError(t, s.Delete(ctx, "chatMessages"))
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)

	t.Run("write failures", func(t *testing.T) {
		s.FailWrites = errors.New("disk full")
		require.Error(t, s.Set(context.Background(), "k", []byte(`1`)))
		s.FailWrites = nil
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, s.Close())
		_, err := s.Get(context.Background(), "blockedUsers")
		require.ErrorIs(t, err, ErrClosed)
	})
}

func TestPebbleStore(t *testing.T) {
	s, err := NewPebbleStore(t.TempDir(), "campushub", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}

func TestPebbleStoreClosed(t *testing.T) {
	ctx := context.Background()
	s, err := NewPebbleStore(t.TempDir(), "campushub", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "blockedUsers", []byte(`[]`)))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Get(ctx, "blockedUsers")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Set(ctx, "blockedUsers", []byte(`["user3"]`)), ErrClosed)
	require.ErrorIs(t, s.Delete(ctx, "blockedUsers"), ErrClosed)
	_, err = s.Keys(ctx)
	require.ErrorIs(t, err, ErrClosed)
}

func TestPebbleStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewPebbleStore(dir, "campushub", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "currentUser", []byte(`{"id":"user1"}`)))
	require.NoError(t, s.Close())

	s, err = NewPebbleStore(dir, "campushub", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"user1"}`, string(v))
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Set("other:chatMessages", "[]")

	s, err := NewRedisStore("redis://"+mr.Addr()+"/0", "campushub", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
	require.True(t, mr.Exists("other:chatMessages"))
}

func TestRedisStoreClosed(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := NewRedisStore("redis://"+mr.Addr()+"/0", "campushub", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Get(ctx, "blockedUsers")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Set(ctx, "blockedUsers", []byte(`[]`)), ErrClosed)
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore("redis://127.0.0.1:1/0", "campushub", zerolog.Nop())
	require.Error(t, err)
}
