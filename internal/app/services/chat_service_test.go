package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/websocket"
	"golang.org/x/time/rate"
)

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	st, store := newAppState(t)
	hub := &fakeBroadcaster{}
	svc := NewChatService(st, hub, nil, zerolog.Nop())

	view, err := svc.SendMessage(ctx, "  Study group at 6?  ")
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("msg%d", fixedNow.UnixMilli()), view.ID)
	require.Equal(t, "Study group at 6?", view.Text)
	require.Equal(t, "user1", view.UserID)
	require.True(t, view.IsOwn)
	require.Equal(t, "just now", view.TimeAgo)
	require.Empty(t, view.Reactions)

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 11)
	require.Equal(t, view.ID, snap.ChatMessages[10].ID)

	raw, err := store.Get(ctx, string(models.KeyChatMessages))
	require.NoError(t, err)
	require.Contains(t, string(raw), view.ID)

	events := hub.Events()
	require.Len(t, events, 1)
	require.Equal(t, websocket.EventMessageCreated, events[0].Type)
	require.Equal(t, *view, events[0].Data)
}

func TestSendMessageRejectsBlankText(t *testing.T) {
	st, _ := newAppState(t)
	hub := &fakeBroadcaster{}
	svc := NewChatService(st, hub, nil, zerolog.Nop())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.SendMessage(context.Background(), text)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		require.Equal(t, "text is required", apperrors.MessageOf(err))
	}

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 10)
	require.Empty(t, hub.Events())
}

func TestSendMessageRateLimited(t *testing.T) {
	st, _ := newAppState(t)
	svc := NewChatService(st, nil, rate.NewLimiter(rate.Every(time.Hour), 2), zerolog.Nop())

	for i := 0; i < 2; i++ {
		_, err := svc.SendMessage(context.Background(), "hello")
		require.NoError(t, err)
	}
	_, err := svc.SendMessage(context.Background(), "hello")
	require.ErrorIs(t, err, apperrors.ErrRateLimited)
}

func TestMessagesInSameMillisecondGetDistinctIDs(t *testing.T) {
	st, _ := newAppState(t)
	svc := NewChatService(st, nil, nil, zerolog.Nop())

	a, err := svc.SendMessage(context.Background(), "one")
	require.NoError(t, err)
	b, err := svc.SendMessage(context.Background(), "two")
	require.NoError(t, err)

	require.Equal(t, fmt.Sprintf("msg%d", fixedNow.UnixMilli()), a.ID)
	require.Equal(t, fmt.Sprintf("msg%d", fixedNow.UnixMilli()+1), b.ID)
}

func TestReact(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	hub := &fakeBroadcaster{}
	svc := NewChatService(st, hub, nil, zerolog.Nop())

	view, err := svc.React(ctx, "msg3", "")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"like": 1}, view.Reactions)
	require.Equal(t, "Emma Wilson", view.AuthorName)

	view, err = svc.React(ctx, "msg1", "love")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"like": 3, "love": 2}, view.Reactions)

	events := hub.Events()
	require.Len(t, events, 2)
	require.Equal(t, websocket.EventMessageUpdated, events[0].Type)

	t.Run("unknown message is a no-op", func(t *testing.T) {
		view, err := svc.React(ctx, "nope", "like")
		require.NoError(t, err)
		require.Nil(t, view)
		require.Len(t, hub.Events(), 2)
	})
}

func TestPostAsBlockedAuthorIsStoredButNotPushed(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	require.NoError(t, st.Block(ctx, "user4"))
	hub := &fakeBroadcaster{}
	svc := NewChatService(st, hub, nil, zerolog.Nop())

	author, _ := st.UserByID("user4")
	require.NoError(t, svc.PostAs(ctx, author, "Good luck on finals!"))

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "user4", snap.ChatMessages[len(snap.ChatMessages)-1].UserID)
	require.Empty(t, hub.Events())

	author, _ = st.UserByID("user5")
	require.NoError(t, svc.PostAs(ctx, author, "Same to you"))
	require.Len(t, hub.Events(), 1)
	require.False(t, hub.Events()[0].Data.(dto.ChatMessageView).IsOwn)
}

func TestSendMessagePersistFailure(t *testing.T) {
	st, store := newAppState(t)
	hub := &fakeBroadcaster{}
	svc := NewChatService(st, hub, nil, zerolog.Nop())
	store.FailWrites = errors.New("disk full")

	_, err := svc.SendMessage(context.Background(), "hello")
	require.ErrorIs(t, err, apperrors.ErrPersistFailed)

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.ChatMessages, 10)
	require.Empty(t, hub.Events())
}

func TestProcessFrame(t *testing.T) {
	ctx := context.Background()
	st, _ := newAppState(t)
	svc := NewChatService(st, nil, nil, zerolog.Nop())

	require.NoError(t, svc.ProcessFrame(ctx, websocket.Frame{Type: websocket.FrameSend, Text: "from socket"}))
	require.NoError(t, svc.ProcessFrame(ctx, websocket.Frame{Type: websocket.FrameReact, MessageID: "msg2"}))

	snap, err := st.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "from socket", snap.ChatMessages[10].Text)
	require.Equal(t, 3, snap.ChatMessages[1].Reactions["like"])

	err = svc.ProcessFrame(ctx, websocket.Frame{Type: websocket.FrameReact})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.ProcessFrame(ctx, websocket.Frame{Type: "typing"})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	err = svc.ProcessFrame(ctx, websocket.Frame{Type: websocket.FrameSend, Text: " "})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
