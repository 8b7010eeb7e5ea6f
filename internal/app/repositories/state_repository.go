package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/kvstore"
	"github.com/yigit/campushub/internal/pkg/metrics"
)

// IStateRepository is the typed adapter the application state persists through.
type IStateRepository interface {
	Read(ctx context.Context, key models.StateKey, dst models.Validatable) bool
	Write(ctx context.Context, key models.StateKey, value any) error
	Clear(ctx context.Context) error
}

// StateRepository encodes state collections as JSON values in a kvstore.
type StateRepository struct {
	store   kvstore.Store
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(store kvstore.Store, lgr zerolog.Logger, m *metrics.Metrics) *StateRepository {
	return &StateRepository{
		store:   store,
		logger:  lgr.With().Str("component", "state_repository").Logger(),
		metrics: m,
	}
}

// Read decodes the value stored under key into dst. It reports false when
// the key is absent, the backend fails, the bytes are not JSON or the decoded
// record does not validate; callers then fall back to seed data. dst may be
// partially written when false is returned.
func (r *StateRepository) Read(ctx context.Context, key models.StateKey, dst models.Validatable) bool {
	raw, err := r.store.Get(ctx, string(key))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			r.metrics.SeedFallback(string(key), "absent")
			return false
		}
		r.logger.Warn().Err(err).Str("key", string(key)).Msg("State read failed, using defaults")
		r.metrics.SeedFallback(string(key), "backend")
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.Warn().Err(err).Str("key", string(key)).Msg("Stored state is not valid JSON, using defaults")
		r.metrics.SeedFallback(string(key), "decode")
		return false
	}

	if err := dst.Validate(); err != nil {
		r.logger.Warn().Err(err).Str("key", string(key)).Msg("Stored state failed validation, using defaults")
		r.metrics.SeedFallback(string(key), "invalid")
		return false
	}

	return true
}

// Write overwrites key with the JSON encoding of value.
func (r *StateRepository) Write(ctx context.Context, key models.StateKey, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := r.store.Set(ctx, string(key), raw); err != nil {
		r.logger.Error().Err(err).Str("key", string(key)).Msg("Error writing state")
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key the store holds for this application, tracked or not.
func (r *StateRepository) Clear(ctx context.Context) error {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("listing state keys: %w", err)
	}

	var finalErr error
	for _, k := range keys {
		if err := r.store.Delete(ctx, k); err != nil {
			r.logger.Error().Err(err).Str("key", k).Msg("Error deleting state key")
			finalErr = errors.Join(finalErr, fmt.Errorf("deleting %s: %w", k, err))
		}
	}
	return finalErr
}
