package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu     sync.Mutex
	frames []Frame
	err    error
}

func (p *recordingProcessor) ProcessFrame(_ context.Context, f Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, f)
	return p.err
}

func (p *recordingProcessor) received() []Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Frame(nil), p.frames...)
}

func startHub(t *testing.T, proc FrameProcessor) (*Hub, *gws.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)
	if proc != nil {
		NewMessageHandler(proc, nil, hub, zerolog.Nop()).Start(ctx)
	}

	router := gin.New()
	router.GET("/ws", NewHandler(hub, "user1", zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	conn, _, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	return hub, conn
}

func readEvent(t *testing.T, conn *gws.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestBroadcastReachesClient(t *testing.T) {
	hub, conn := startHub(t, nil)

	hub.Broadcast(EventMessageCreated, map[string]string{"id": "msg11"})

	ev := readEvent(t, conn)
	require.Equal(t, EventMessageCreated, ev.Type)
	require.Equal(t, map[string]interface{}{"id": "msg11"}, ev.Data)
}

func TestFramesReachProcessor(t *testing.T) {
	proc := &recordingProcessor{}
	_, conn := startHub(t, proc)

	require.NoError(t, conn.WriteJSON(Frame{Type: FrameReact, MessageID: "msg1", Kind: "like"}))

	require.Eventually(t, func() bool { return len(proc.received()) == 1 }, time.Second, 5*time.Millisecond)
	got := proc.received()[0]
	require.Equal(t, FrameReact, got.Type)
	require.Equal(t, "msg1", got.MessageID)
	require.Equal(t, "like", got.Kind)
}

func TestRejectedFrameRepliesToSender(t *testing.T) {
	proc := &recordingProcessor{err: errors.New("message text is required")}
	_, conn := startHub(t, proc)

	require.NoError(t, conn.WriteJSON(Frame{Type: FrameSend, Text: "   "}))

	ev := readEvent(t, conn)
	require.Equal(t, EventError, ev.Type)
	require.Equal(t, "message text is required", ev.Error)
}

func TestMalformedFrame(t *testing.T) {
	_, conn := startHub(t, &recordingProcessor{})

	require.NoError(t, conn.WriteMessage(gws.TextMessage, []byte("{not json")))

	ev := readEvent(t, conn)
	require.Equal(t, EventError, ev.Type)
	require.Equal(t, "malformed frame", ev.Error)
}

func TestClientUnregistersOnClose(t *testing.T) {
	hub, conn := startHub(t, nil)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	for i := 0; i < 1000; i++ {
		hub.Broadcast(EventMessageUpdated, i)
	}
	require.Equal(t, 0, hub.ClientCount())
}
