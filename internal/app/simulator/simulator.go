// Package simulator posts synthetic chat messages while the chat page is open.
//
// The simulator is either INACTIVE (no ticker) or ACTIVE (exactly one ticker).
// Start always stops the current ticker before creating a new one.
package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/pkg/metrics"
)

// Ticker is the subset of *time.Ticker the simulator needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every period.
type TickerFactory func(period time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealTicker wraps time.NewTicker.
func RealTicker(period time.Duration) Ticker {
	return realTicker{t: time.NewTicker(period)}
}

// UserSource lists the users a synthetic message may come from.
type UserSource interface {
	Users() []models.User
}

// Sink posts a message on behalf of a user through the regular send path.
type Sink interface {
	PostAs(ctx context.Context, author models.User, text string) error
}

// Config holds the simulator tunables.
type Config struct {
	Period      time.Duration
	Probability float64
	Phrases     []string
}

// Simulator periodically injects a random phrase from a random user.
type Simulator struct {
	cfg       Config
	users     UserSource
	sink      Sink
	newTicker TickerFactory
	logger    zerolog.Logger
	metrics   *metrics.Metrics

	mu     sync.Mutex
	rng    *rand.Rand
	ticker Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// Option customises a Simulator.
type Option func(*Simulator)

// WithTickerFactory replaces time.NewTicker.
func WithTickerFactory(f TickerFactory) Option {
	return func(s *Simulator) { s.newTicker = f }
}

// WithRand replaces the random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

// WithMetrics records ticks and the active state.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// New creates an inactive simulator.
func New(cfg Config, users UserSource, sink Sink, lgr zerolog.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		cfg:       cfg,
		users:     users,
		sink:      sink,
		newTicker: RealTicker,
		logger:    lgr.With().Str("component", "simulator").Logger(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers a fresh ticker, replacing any running one.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ticker := s.newTicker(s.cfg.Period)
	done := make(chan struct{})
	s.ticker = ticker
	s.done = done

	s.wg.Add(1)
	go s.run(ticker, done)

	s.metrics.SimulatorActive(true)
	s.logger.Debug().Dur("period", s.cfg.Period).Msg("Chat simulator started")
}

// Stop cancels the ticker. Stopping an inactive simulator is a no-op.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopLocked() {
		s.logger.Debug().Msg("Chat simulator stopped")
	}
}

func (s *Simulator) stopLocked() bool {
	if s.ticker == nil {
		return false
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
	s.metrics.SimulatorActive(false)
	return true
}

// Active reports whether a ticker is registered.
func (s *Simulator) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

// Close stops the simulator and waits for in-flight ticks to finish.
func (s *Simulator) Close() {
	s.Stop()
	s.wg.Wait()
}

func (s *Simulator) run(ticker Ticker, done <-chan struct{}) {
	defer s.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			select {
			case <-done:
				// Stopped while the tick was pending.
				return
			default:
			}
			s.Tick(context.Background())
		}
	}
}

// Tick performs one injection attempt. It is exported so callers can drive
// the simulator deterministically.
func (s *Simulator) Tick(ctx context.Context) {
	users := s.users.Users()
	if len(users) == 0 || len(s.cfg.Phrases) == 0 {
		s.metrics.SimulatorTick("skipped")
		return
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	author := users[s.rng.Intn(len(users))]
	text := s.cfg.Phrases[s.rng.Intn(len(s.cfg.Phrases))]
	s.mu.Unlock()

	if roll >= s.cfg.Probability {
		s.metrics.SimulatorTick("skipped")
		return
	}

	if err := s.sink.PostAs(ctx, author, text); err != nil {
		s.logger.Warn().Err(err).Str("userID", author.ID).Msg("Simulated message not posted")
		s.metrics.SimulatorTick("failed")
		return
	}
	s.metrics.SimulatorTick("injected")
}
