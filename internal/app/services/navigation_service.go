package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/renderers"
	"github.com/yigit/campushub/internal/app/state"
)

// SimulatorControl starts and stops the background chat simulator
type SimulatorControl interface {
	Start()
	Stop()
}

// NavigationService defines the interface for page navigation
type NavigationService interface {
	Navigate(ctx context.Context, page string, opts renderers.Options) (*dto.PageView, error)
	Refresh(ctx context.Context) (*dto.PageView, error)
	Current() models.Page
}

type navigationServiceImpl struct {
	state     *state.AppState
	simulator SimulatorControl
	logger    zerolog.Logger

	mu      sync.Mutex
	current models.Page
}

// NewNavigationService creates a new NavigationService starting on the dashboard
func NewNavigationService(appState *state.AppState, simulator SimulatorControl, logger zerolog.Logger) NavigationService {
	return &navigationServiceImpl{
		state:     appState,
		simulator: simulator,
		logger:    logger.With().Str("service", "navigation").Logger(),
		current:   models.PageDashboard,
	}
}

// Navigate switches to page and renders it. Unknown pages resolve to the
// dashboard. The simulator runs only while the chat page is current.
func (s *navigationServiceImpl) Navigate(ctx context.Context, page string, opts renderers.Options) (*dto.PageView, error) {
	target, ok := models.ParsePage(page)
	if !ok {
		s.logger.Debug().Str("page", page).Msg("Unknown page, showing dashboard")
	}

	snap, err := s.state.Snapshot()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.current
	s.current = target
	if s.simulator != nil {
		if target == models.PageChat {
			s.simulator.Start()
		} else {
			s.simulator.Stop()
		}
	}
	s.mu.Unlock()

	if prev != target {
		s.logger.Debug().Str("from", string(prev)).Str("to", string(target)).Msg("Page changed")
	}

	view := renderers.Render(target, snap, opts)
	return &view, nil
}

// Refresh re-renders the current page after a mutation
func (s *navigationServiceImpl) Refresh(ctx context.Context) (*dto.PageView, error) {
	snap, err := s.state.Snapshot()
	if err != nil {
		return nil, err
	}
	view := renderers.Render(s.Current(), snap, renderers.Options{})
	return &view, nil
}

// Current returns the page last navigated to
func (s *navigationServiceImpl) Current() models.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
