package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	userID string
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler acting for userID
func NewHandler(hub *Hub, userID string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		userID: userID,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Live chat stream
// @Description Upgrades to a WebSocket that pushes message.created and message.updated events and accepts {"type":"send","text":...} and {"type":"react","messageId":...,"kind":...} frames
// @Tags chat
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 503 {object} dto.APIResponse "Chat stream unavailable"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, h.userID, h.logger)
	if !h.hub.submit(h.hub.register, client) {
		h.logger.Warn().Msg("Hub stopped, refusing WebSocket connection")
		conn.Close()
		return
	}

	go client.writeEvents()
	go client.readFrames()

	h.logger.Info().
		Str("userID", h.userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
