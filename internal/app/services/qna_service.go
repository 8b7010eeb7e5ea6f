package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// QnAService defines the interface for Q&A operations
type QnAService interface {
	AskQuestion(ctx context.Context, req *dto.AskQuestionRequest) (*models.QnaPost, error)
	PostAnswer(ctx context.Context, questionID string, req *dto.PostAnswerRequest) (*models.Answer, error)
}

type qnaServiceImpl struct {
	state  *state.AppState
	logger zerolog.Logger
	ids    idSequence
}

// NewQnAService creates a new QnAService
func NewQnAService(appState *state.AppState, logger zerolog.Logger) QnAService {
	return &qnaServiceImpl{
		state:  appState,
		logger: logger.With().Str("service", "qna").Logger(),
	}
}

// AskQuestion appends a new question by the current user
func (s *qnaServiceImpl) AskQuestion(ctx context.Context, req *dto.AskQuestionRequest) (*models.QnaPost, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	author := s.state.CurrentUser()
	now := s.state.Now()
	post := models.QnaPost{
		ID:         s.ids.next("q", now),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		Tags:       splitTags(req.Tags),
		PostedDate: now.UnixMilli(),
		Answers:    []models.Answer{},
	}

	if err := s.state.AddQuestion(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("Failed to add question")
		return nil, err
	}

	s.logger.Info().Str("questionID", post.ID).Msg("Question posted")
	return &post, nil
}

// PostAnswer appends an answer by the current user to questionID
func (s *qnaServiceImpl) PostAnswer(ctx context.Context, questionID string, req *dto.PostAnswerRequest) (*models.Answer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	author := s.state.CurrentUser()
	now := s.state.Now()
	answer := models.Answer{
		ID:         s.ids.next("a", now),
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Content:    strings.TrimSpace(req.Content),
		PostedDate: now.UnixMilli(),
	}

	if err := s.state.AddAnswer(ctx, questionID, answer); err != nil {
		s.logger.Warn().Err(err).Str("questionID", questionID).Msg("Failed to add answer")
		return nil, err
	}

	s.logger.Info().Str("questionID", questionID).Str("answerID", answer.ID).Msg("Answer posted")
	return &answer, nil
}
