// Package state holds the authoritative in-memory copy of every persisted
// collection. Every mutation is written through to the store before it
// becomes visible in memory, and all access is serialised by one mutex so
// handlers, websocket frames and simulator ticks run to completion one at a
// time.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/repositories"
	"github.com/yigit/campushub/internal/pkg/apperrors"
	"github.com/yigit/campushub/internal/pkg/metrics"
	"github.com/yigit/campushub/internal/seed"
)

// ErrUnchanged is returned by an updater to signal a lookup miss or a no-op.
// Mutate then skips the write and reports success.
var ErrUnchanged = errors.New("state unchanged")

// Snapshot is a deep copy of the state handed to renderers.
type Snapshot struct {
	models.AppData
	Users []models.User
	Stats models.DashboardStats
	Now   time.Time
}

// AppState is the write-through cache over the state repository.
type AppState struct {
	mu          sync.Mutex
	repo        repositories.IStateRepository
	seed        seed.Provider
	now         func() time.Time
	logger      zerolog.Logger
	metrics     *metrics.Metrics
	data        models.AppData
	initialized bool
}

// New creates an uninitialized AppState. A nil clock means time.Now; m may be nil.
func New(repo repositories.IStateRepository, provider seed.Provider, now func() time.Time, lgr zerolog.Logger, m *metrics.Metrics) *AppState {
	if now == nil {
		now = time.Now
	}
	return &AppState{
		repo:    repo,
		seed:    provider,
		now:     now,
		logger:  lgr.With().Str("component", "app_state").Logger(),
		metrics: m,
	}
}

// Initialize loads every tracked key, substituting and persisting the seed
// default for keys that are absent or fail to decode. It runs once; call
// Reset to run it again.
func (s *AppState) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return apperrors.ErrAlreadyInitialized
	}
	s.initLocked(ctx)
	return nil
}

func (s *AppState) initLocked(ctx context.Context) {
	defaults := s.seed.Defaults()
	var loaded models.AppData

	for _, key := range models.TrackedKeys {
		if s.repo.Read(ctx, key, loaded.Field(key)) {
			continue
		}
		loaded.CopyField(key, &defaults)
		if err := s.repo.Write(ctx, key, defaults.Field(key)); err != nil {
			// Memory still holds the default; the next start retries the write.
			s.logger.Warn().Err(err).Str("key", string(key)).Msg("Could not persist seed default")
			continue
		}
		s.logger.Debug().Str("key", string(key)).Msg("Seeded default state")
	}

	if loaded.BlockedUsers == nil {
		loaded.BlockedUsers = models.BlockedUsers{}
	}
	s.data = loaded
	s.initialized = true
	s.logger.Info().Int("chatMessages", len(loaded.ChatMessages)).Msg("Application state initialized")
}

// Mutate applies update to a copy of the state, persists the collection under
// key and only then swaps it into memory. Changes update makes to other
// collections are discarded. A failed write leaves memory untouched.
func (s *AppState) Mutate(ctx context.Context, key models.StateKey, update func(d *models.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return apperrors.ErrNotInitialized
	}

	next := s.data.Clone()
	if err := update(&next); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}
		return err
	}

	if err := s.repo.Write(ctx, key, next.Field(key)); err != nil {
		s.metrics.PersistFailed(string(key))
		return &apperrors.CustomError{Err: apperrors.ErrPersistFailed, Message: fmt.Sprintf("could not save %s: %v", key, err)}
	}

	s.data.CopyField(key, &next)
	s.metrics.StateMutated(string(key))
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *AppState) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return Snapshot{}, apperrors.ErrNotInitialized
	}
	return Snapshot{
		AppData: s.data.Clone(),
		Users:   s.seed.Users(),
		Stats:   s.seed.Stats(),
		Now:     s.now(),
	}, nil
}

// IsBlocked reports whether userID is in the blocked set.
func (s *AppState) IsBlocked(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.BlockedUsers.Contains(userID)
}

// CurrentUser returns the signed-in user record.
func (s *AppState) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CurrentUser.Clone()
}

// Users returns the user directory.
func (s *AppState) Users() []models.User {
	return s.seed.Users()
}

// UserByID looks a user up in the directory. Unknown ids resolve to the
// current user and ok is false.
func (s *AppState) UserByID(id string) (models.User, bool) {
	for _, u := range s.seed.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return s.CurrentUser(), false
}

// Now returns the state clock's current time.
func (s *AppState) Now() time.Time {
	return s.now()
}

// Reset erases every persisted key and re-initializes from seed data.
func (s *AppState) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return &apperrors.CustomError{Err: apperrors.ErrPersistFailed, Message: fmt.Sprintf("could not clear data: %v", err)}
	}
	s.data = models.AppData{}
	s.initialized = false
	s.logger.Warn().Msg("All persisted data cleared")

	s.initLocked(ctx)
	return nil
}
