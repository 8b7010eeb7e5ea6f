package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/repositories"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/auth"
	"github.com/yigit/campushub/internal/pkg/kvstore"
	"github.com/yigit/campushub/internal/seed"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func init() {
	auth.BcryptCost = 4
}

func newAppState(t *testing.T) (*state.AppState, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := repositories.NewStateRepository(store, zerolog.Nop(), nil)
	s := state.New(repo, seed.NewStaticProvider(clock), clock, zerolog.Nop(), nil)
	require.NoError(t, s.Initialize(context.Background()))
	return s, store
}

type broadcastEvent struct {
	Type string
	Data interface{}
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

func (b *fakeBroadcaster) Broadcast(eventType string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{Type: eventType, Data: data})
}

func (b *fakeBroadcaster) Events() []broadcastEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]broadcastEvent(nil), b.events...)
}

type fakeSimulator struct {
	starts, stops int
	active        bool
}

func (f *fakeSimulator) Start() { f.starts++; f.active = true }
func (f *fakeSimulator) Stop()  { f.stops++; f.active = false }
