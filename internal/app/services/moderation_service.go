package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// ReportConfirmation is shown after a report is filed
const ReportConfirmation = "Report submitted. Our moderators will review it shortly."

// ModerationService defines the interface for blocking and reporting
type ModerationService interface {
	Block(ctx context.Context, userID string) error
	Unblock(ctx context.Context, userID string) error
	SubmitReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
}

type moderationServiceImpl struct {
	state  *state.AppState
	logger zerolog.Logger
}

// NewModerationService creates a new ModerationService
func NewModerationService(appState *state.AppState, logger zerolog.Logger) ModerationService {
	return &moderationServiceImpl{
		state:  appState,
		logger: logger.With().Str("service", "moderation").Logger(),
	}
}

// Block hides userID's chat messages from the current user. Blocking an
// already blocked user is a no-op.
func (s *moderationServiceImpl) Block(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperrors.NewValidationError("userId", "userId is required")
	}
	if userID == s.state.CurrentUser().ID {
		return apperrors.NewBadRequestError("You cannot block yourself")
	}
	if _, ok := s.state.UserByID(userID); !ok {
		return apperrors.NewResourceNotFoundError("user " + userID + " not found")
	}

	if err := s.state.Block(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("userID", userID).Msg("User blocked")
	return nil
}

// Unblock removes userID from the blocked set. Unknown ids are a no-op.
func (s *moderationServiceImpl) Unblock(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperrors.NewValidationError("userId", "userId is required")
	}

	removed, err := s.state.Unblock(ctx, userID)
	if err != nil {
		return err
	}
	if removed {
		s.logger.Info().Str("userID", userID).Msg("User unblocked")
	} else {
		s.logger.Debug().Str("userID", userID).Msg("User was not blocked")
	}
	return nil
}

// SubmitReport acknowledges a moderation report. Reports are logged for the
// moderators and not stored.
func (s *moderationServiceImpl) SubmitReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	s.logger.Info().
		Str("reportID", id).
		Str("type", req.Type).
		Str("reporter", s.state.CurrentUser().ID).
		Msg("Report submitted")

	return &dto.ReportResponse{ReportID: id, Type: req.Type, Message: ReportConfirmation}, nil
}
