package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types pushed to clients.
const (
	EventMessageCreated = "message.created"
	EventMessageUpdated = "message.updated"
	EventError          = "error"
)

// Frame types accepted from clients.
const (
	FrameSend  = "send"
	FrameReact = "react"
)

// Event is an outbound notification.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Frame is an inbound request from a client.
type Frame struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	Kind      string `json:"kind,omitempty"`

	// client that sent the frame, for error replies
	client *Client
}

// Hub maintains the set of active clients and broadcasts chat events to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Encoded events to fan out
	broadcast chan []byte

	// Frames read from clients
	inbound chan *Frame

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Mutex for frame listeners
	listenersMu sync.RWMutex

	// Frame listeners
	frameListeners []chan *Frame

	// Closed when Run returns
	done chan struct{}

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:      make(chan []byte, 256),
		inbound:        make(chan *Frame, 256),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		clients:        make(map[*Client]bool),
		frameListeners: []chan *Frame{},
		done:           make(chan struct{}),
		logger:         logger.With().Str("component", "ws_hub").Logger(),
	}
}

// Run handles registrations, broadcasts and inbound frames until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeClientLocked(client)
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.broadcastData(data)

		case frame := <-h.inbound:
			h.notifyFrameListeners(frame)
		}
	}
}

// submit hands a client request to Run unless the hub has stopped.
func (h *Hub) submit(ch chan *Client, client *Client) bool {
	select {
	case ch <- client:
		return true
	case <-h.done:
		return false
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Int("clients", len(h.clients)).
		Msg("Client registered")
}

func (h *Hub) removeClientLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.removeClientLocked(client)
	}
}

// broadcastData sends encoded data to every client. Clients whose buffer is
// full are dropped.
func (h *Hub) broadcastData(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn().Str("userID", client.userID).Msg("Dropping slow client")
			h.removeClientLocked(client)
		}
	}

	h.logger.Debug().Int("clientCount", len(h.clients)).Msg("Event broadcasted")
}

// notifyFrameListeners hands a frame to every registered listener
func (h *Hub) notifyFrameListeners(frame *Frame) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.frameListeners {
		select {
		case listener <- frame:
		default:
			h.logger.Warn().Msg("Skipped slow frame listener")
		}
	}
}

// Broadcast queues an event for every connected client. It never blocks; the
// event is dropped when the queue is full.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data, Timestamp: time.Now()})
	if err != nil {
		h.logger.Error().Err(err).Str("type", eventType).Msg("Failed to marshal event for broadcast")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn().Str("type", eventType).Msg("Broadcast queue full, event dropped")
	}
}

// Reply sends an error event to the client a frame came from.
func (h *Hub) Reply(frame *Frame, errMsg string) {
	if frame == nil || frame.client == nil {
		return
	}
	payload, err := json.Marshal(Event{Type: EventError, Error: errMsg, Timestamp: time.Now()})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[frame.client]; !ok {
		return
	}
	select {
	case frame.client.send <- payload:
	default:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// AddFrameListener registers a channel to receive all inbound frames
func (h *Hub) AddFrameListener(listener chan *Frame) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	h.frameListeners = append(h.frameListeners, listener)
	h.logger.Debug().Msg("Added frame listener")
}

// RemoveFrameListener removes a listener from the hub
func (h *Hub) RemoveFrameListener(listener chan *Frame) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.frameListeners {
		if l == listener {
			h.frameListeners[i] = h.frameListeners[len(h.frameListeners)-1]
			h.frameListeners = h.frameListeners[:len(h.frameListeners)-1]
			h.logger.Debug().Msg("Removed frame listener")
			break
		}
	}
}
