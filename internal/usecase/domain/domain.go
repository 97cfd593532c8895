// Package domain contains application services orchestrating the task and
// sprint lifecycle and the derived board analytics.
package domain

import (
	"context"
	"time"

	"github.com/Durga62823/work-board-sub000/config"
	"github.com/Durga62823/work-board-sub000/internal/lifecycle"
	"github.com/Durga62823/work-board-sub000/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	engine  config.EngineConfig
	clock   lifecycle.Clock
	newID   func() string
}

// Option customises a Usecase.
type Option func(*Usecase)

// WithClock replaces the wall clock used for lifecycle timestamps.
func WithClock(clock lifecycle.Clock) Option {
	return func(u *Usecase) { u.clock = clock }
}

// WithIDGenerator replaces the generator for new record ids.
func WithIDGenerator(gen func() string) Option {
	return func(u *Usecase) { u.newID = gen }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
	engine config.EngineConfig,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		engine:  engine,
		clock:   func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.engine.BulkParallelism <= 0 {
		u.engine.BulkParallelism = 1
	}
	return u
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
