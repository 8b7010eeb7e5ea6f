package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/renderers"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/apperrors"
)

// ExportFileName is the attachment name of the data export
const ExportFileName = "my-data.json"

// DataService defines the interface for export and clear-all
type DataService interface {
	Export(ctx context.Context) ([]byte, error)
	ClearAll(ctx context.Context, confirmed bool) (*dto.PageView, error)
}

type dataServiceImpl struct {
	state      *state.AppState
	navigation NavigationService
	logger     zerolog.Logger
}

// NewDataService creates a new DataService
func NewDataService(appState *state.AppState, navigation NavigationService, logger zerolog.Logger) DataService {
	return &dataServiceImpl{
		state:      appState,
		navigation: navigation,
		logger:     logger.With().Str("service", "data").Logger(),
	}
}

// Export serialises the user's collections as a two-space indented JSON document
func (s *dataServiceImpl) Export(ctx context.Context) ([]byte, error) {
	snap, err := s.state.Snapshot()
	if err != nil {
		return nil, err
	}

	doc := dto.ExportDocument{
		User:             snap.CurrentUser,
		ChatMessages:     snap.ChatMessages,
		MarketplaceItems: snap.MarketplaceItems,
		QnaPosts:         snap.QnaPosts,
		Achievements:     snap.Achievements,
		BlockedUsers:     snap.BlockedUsers,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	s.logger.Info().Int("bytes", len(data)).Msg("Data exported")
	return data, nil
}

// ClearAll erases every persisted collection and re-seeds the state. It
// refuses to run without explicit confirmation. The dashboard is shown
// afterwards.
func (s *dataServiceImpl) ClearAll(ctx context.Context, confirmed bool) (*dto.PageView, error) {
	if !confirmed {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrConfirmationRequired,
			Message: "Are you sure you want to clear all data? Confirm to continue.",
		}
	}

	if err := s.state.Reset(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear data")
		return nil, err
	}
	s.logger.Warn().Msg("All user data cleared and re-seeded")

	if s.navigation == nil {
		return nil, nil
	}
	return s.navigation.Navigate(ctx, string(models.PageDashboard), renderers.Options{})
}
