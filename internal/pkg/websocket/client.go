package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxFrameSize   = 16 * 1024
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user service; origin checks are left to the reverse proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one live chat connection. Every outbound event is written as
// its own text message so browsers can JSON.parse each one.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
	logger zerolog.Logger
}

func newClient(hub *Hub, conn *websocket.Conn, userID string, lgr zerolog.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		logger: lgr.With().Str("userID", userID).Logger(),
	}
}

func (c *Client) remoteAddr() string {
	if c.conn == nil {
		return ""
	}
	return c.conn.RemoteAddr().String()
}

func (c *Client) extendReadDeadline(string) error {
	return c.conn.SetReadDeadline(time.Now().Add(pongWait))
}

// readFrames decodes client frames and forwards them to the hub until the
// connection fails or the hub stops.
func (c *Client) readFrames() {
	defer func() {
		c.hub.submit(c.hub.unregister, c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.extendReadDeadline("")
	c.conn.SetPongHandler(c.extendReadDeadline)

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			c.logReadError(err)
			return
		}

		frame := &Frame{}
		if err := json.Unmarshal(payload, frame); err != nil {
			c.logger.Warn().Err(err).Msg("Malformed chat frame")
			c.hub.Reply(&Frame{client: c}, "malformed frame")
			continue
		}
		frame.client = c

		select {
		case c.hub.inbound <- frame:
		case <-c.hub.done:
			return
		}
	}
}

func (c *Client) logReadError(err error) {
	switch {
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		c.logger.Info().Msg("WebSocket closed by peer")
	case websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure):
		c.logger.Warn().Err(err).Msg("Unexpected WebSocket close")
	default:
		c.logger.Debug().Err(err).Msg("WebSocket read ended")
	}
}

// writeEvents drains the send queue and keeps the connection alive with pings.
// The hub closes send when the client is removed.
func (c *Client) writeEvents() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Debug().Err(err).Msg("WebSocket write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
