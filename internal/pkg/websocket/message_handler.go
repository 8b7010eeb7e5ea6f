package websocket

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// FrameProcessor executes an inbound frame. Returned errors are reported to
// the sending client only.
type FrameProcessor interface {
	ProcessFrame(ctx context.Context, frame Frame) error
}

// ErrorMessage extracts the user-facing text of a processing error.
type ErrorMessage func(err error) string

// MessageHandler feeds inbound frames to the chat service
type MessageHandler struct {
	processor FrameProcessor
	message   ErrorMessage
	hub       *Hub
	logger    zerolog.Logger
	frames    chan *Frame
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(processor FrameProcessor, message ErrorMessage, hub *Hub, logger zerolog.Logger) *MessageHandler {
	if message == nil {
		message = func(err error) string { return err.Error() }
	}
	return &MessageHandler{
		processor: processor,
		message:   message,
		hub:       hub,
		logger:    logger,
		frames:    make(chan *Frame, 64),
	}
}

// Start begins processing frames from the hub until ctx is done
func (h *MessageHandler) Start(ctx context.Context) {
	h.hub.AddFrameListener(h.frames)
	go h.processFrames(ctx)
}

func (h *MessageHandler) processFrames(ctx context.Context) {
	defer h.hub.RemoveFrameListener(h.frames)
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-h.frames:
			h.HandleFrame(ctx, frame)
		}
	}
}

// HandleFrame processes one frame, replying to the sender on failure.
func (h *MessageHandler) HandleFrame(ctx context.Context, frame *Frame) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.processor.ProcessFrame(ctx, *frame); err != nil {
		h.logger.Debug().Err(err).Str("type", frame.Type).Msg("Frame rejected")
		h.hub.Reply(frame, h.message(err))
	}
}
