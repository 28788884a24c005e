// Package services – CounterService
//
// This file implements the CounterService, a generic singleton-counter
// abstraction used for both the visitor counter and the question-request
// counter. Each operation (Get, Increment, Reset) delegates to atomic
// repository upserts and wraps them in a bounded retry loop so transient
// storage failures are absorbed before surfacing an error to the handler.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/repo"
)

// CounterStore defines the repository contract required by CounterService.
// All three operations are atomic at the storage layer: absent rows are
// created inside the same statement, so concurrent callers never race a
// separate find against a create.
type CounterStore interface {
	// Get loads the singleton counter for kind, creating it with count=0 when absent.
	Get(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error)

	// Increment adds one to the counter for kind, creating it with count=1 when absent.
	Increment(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error)

	// Reset sets the counter for kind to zero, creating it when absent.
	Reset(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error)
}

// counterStore adapts the repo free functions to the CounterStore interface.
type counterStore struct{}

func (counterStore) Get(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	return repo.GetCounter(ctx, db, kind)
}

func (counterStore) Increment(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	return repo.IncrementCounter(ctx, db, kind)
}

func (counterStore) Reset(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	return repo.ResetCounter(ctx, db, kind)
}

// CounterService provides get/increment/reset over one counter kind with a
// uniform retry policy. Two instances exist in the running server, one per
// kind; they share the same code path and differ only by Kind.
type CounterService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the counter repository used by this service.
	Store CounterStore
	// Kind selects which singleton counter this service owns.
	Kind string

	// MaxAttempts is the total number of tries per operation (>= 1).
	MaxAttempts int
	// RetryDelay is the pause between failed attempts.
	RetryDelay time.Duration
	// OpTimeout bounds each individual attempt.
	OpTimeout time.Duration
}

// NewCounterService constructs a CounterService for kind with the default
// policy: 3 attempts, 1s between attempts, 5s per attempt.
func NewCounterService(db *gorm.DB, kind string) *CounterService {
	return &CounterService{
		DB:          db,
		Store:       counterStore{},
		Kind:        kind,
		MaxAttempts: 3,
		RetryDelay:  time.Second,
		OpTimeout:   5 * time.Second,
	}
}

// Get returns the current counter value, creating the singleton with count=0
// on first access.
func (s *CounterService) Get(ctx context.Context) (*domain.Counter, error) {
	return s.withRetry(ctx, s.Store.Get)
}

// Increment bumps the counter by one and returns the updated value.
func (s *CounterService) Increment(ctx context.Context) (*domain.Counter, error) {
	return s.withRetry(ctx, s.Store.Increment)
}

// Reset sets the counter to zero and returns the updated value.
func (s *CounterService) Reset(ctx context.Context) (*domain.Counter, error) {
	return s.withRetry(ctx, s.Store.Reset)
}

// withRetry runs op up to MaxAttempts times, bounding each attempt to
// OpTimeout and pausing RetryDelay between failures. Success short-circuits
// immediately; cancellation of the parent context aborts the loop.
func (s *CounterService) withRetry(ctx context.Context, op func(context.Context, *gorm.DB, string) (*domain.Counter, error)) (*domain.Counter, error) {
	attempts := s.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		opCtx := ctx
		var cancel context.CancelFunc = func() {}
		if s.OpTimeout > 0 {
			opCtx, cancel = context.WithTimeout(ctx, s.OpTimeout)
		}
		c, err := op(opCtx, s.DB, s.Kind)
		cancel()
		if err == nil {
			return c, nil
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(s.RetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}
