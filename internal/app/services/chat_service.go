package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/renderers"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/validation"
	"github.com/yigit/campushub/internal/pkg/websocket"
	"golang.org/x/time/rate"
)

// Broadcaster pushes chat events to connected clients
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}

// ChatService defines the interface for chat operations
type ChatService interface {
	SendMessage(ctx context.Context, text string) (*dto.ChatMessageView, error)
	React(ctx context.Context, messageID, kind string) (*dto.ChatMessageView, error)
	PostAs(ctx context.Context, author models.User, text string) error
	ProcessFrame(ctx context.Context, frame websocket.Frame) error
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	state       *state.AppState
	broadcaster Broadcaster
	limiter     *rate.Limiter
	logger      zerolog.Logger
	ids         idSequence
}

// NewChatService creates a new ChatService. A nil limiter disables rate limiting.
func NewChatService(appState *state.AppState, broadcaster Broadcaster, limiter *rate.Limiter, logger zerolog.Logger) ChatService {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &chatServiceImpl{
		state:       appState,
		broadcaster: broadcaster,
		limiter:     limiter,
		logger:      logger.With().Str("service", "chat").Logger(),
	}
}

// NewChatLimiter builds the send limiter from config values. A non-positive
// rate disables limiting.
func NewChatLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// SendMessage posts text as the current user
func (s *chatServiceImpl) SendMessage(ctx context.Context, text string) (*dto.ChatMessageView, error) {
	if err := validation.Struct(dto.SendMessageRequest{Text: text}); err != nil {
		return nil, err
	}
	if !s.limiter.Allow() {
		return nil, &apperrors.CustomError{Err: apperrors.ErrRateLimited, Message: "You are sending messages too quickly"}
	}

	author := s.state.CurrentUser()
	view, err := s.post(ctx, author, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return view, nil
}

// PostAs appends a message written by author. The simulator injects
// messages through here.
func (s *chatServiceImpl) PostAs(ctx context.Context, author models.User, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return apperrors.NewValidationError("text", "text is required")
	}
	_, err := s.post(ctx, author, text)
	return err
}

func (s *chatServiceImpl) post(ctx context.Context, author models.User, text string) (*dto.ChatMessageView, error) {
	now := s.state.Now()
	msg := models.ChatMessage{
		ID:        s.ids.next("msg", now),
		UserID:    author.ID,
		Text:      text,
		Timestamp: now.UnixMilli(),
		Reactions: map[string]int{},
	}
	if err := s.state.AppendChatMessage(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("userID", author.ID).Msg("Failed to append chat message")
		return nil, err
	}

	s.logger.Debug().Str("messageID", msg.ID).Str("userID", author.ID).Msg("Chat message posted")
	view := s.view(msg)
	s.publish(websocket.EventMessageCreated, msg.UserID, view)
	return &view, nil
}

// React adds a reaction of kind to a message. An unknown message id is a
// no-op and returns a nil view.
func (s *chatServiceImpl) React(ctx context.Context, messageID, kind string) (*dto.ChatMessageView, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = models.DefaultReaction
	}
	if err := validation.Struct(dto.ReactRequest{Kind: kind}); err != nil {
		return nil, err
	}

	updated, found, err := s.state.React(ctx, messageID, kind)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug().Str("messageID", messageID).Msg("Reaction to unknown message ignored")
		return nil, nil
	}

	view := s.view(updated)
	s.publish(websocket.EventMessageUpdated, updated.UserID, view)
	return &view, nil
}

// ProcessFrame executes a frame received over the chat websocket
func (s *chatServiceImpl) ProcessFrame(ctx context.Context, frame websocket.Frame) error {
	switch frame.Type {
	case websocket.FrameSend:
		_, err := s.SendMessage(ctx, frame.Text)
		return err
	case websocket.FrameReact:
		if strings.TrimSpace(frame.MessageID) == "" {
			return apperrors.NewValidationError("messageId", "messageId is required")
		}
		_, err := s.React(ctx, frame.MessageID, frame.Kind)
		return err
	default:
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown frame type %q", frame.Type))
	}
}

func (s *chatServiceImpl) view(m models.ChatMessage) dto.ChatMessageView {
	author, _ := s.state.UserByID(m.UserID)
	return renderers.MessageView(m, author, s.state.CurrentUser().ID, s.state.Now().UnixMilli())
}

// publish pushes the event unless the author is hidden from the current user.
func (s *chatServiceImpl) publish(eventType, authorID string, view dto.ChatMessageView) {
	if s.broadcaster == nil || s.state.IsBlocked(authorID) {
		return
	}
	s.broadcaster.Broadcast(eventType, view)
}
