package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

func TestGetCounter_CreatesSingletonOnFirstAccess(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	c, err := GetCounter(context.Background(), db, domain.CounterVisitor)
	if err != nil {
		t.Fatalf("GetCounter: %v", err)
	}
	if c.Count != 0 {
		t.Fatalf("fresh counter count = %d, want 0", c.Count)
	}
	if c.LastUpdated.IsZero() {
		t.Fatalf("LastUpdated not set")
	}

	// A second Get must read the same row, not create another.
	if _, err := GetCounter(context.Background(), db, domain.CounterVisitor); err != nil {
		t.Fatalf("second GetCounter: %v", err)
	}
	var n int64
	if err := db.Model(&domain.Counter{}).Where("kind = ?", domain.CounterVisitor).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 counter row, got %d", n)
	}
}

func TestIncrementCounter_NoLostUpdatesUnderConcurrency(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := IncrementCounter(context.Background(), db, domain.CounterVisitor); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("IncrementCounter: %v", err)
	}

	c, err := GetCounter(context.Background(), db, domain.CounterVisitor)
	if err != nil {
		t.Fatalf("GetCounter: %v", err)
	}
	if c.Count != workers {
		t.Fatalf("count = %d after %d concurrent increments, want %d", c.Count, workers, workers)
	}

	var rows int64
	if err := db.Model(&domain.Counter{}).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("concurrent first accesses created %d rows, want 1", rows)
	}
}

func TestIncrementCounter_CreatesWithCountOne(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	c, err := IncrementCounter(context.Background(), db, domain.CounterQuestionRequest)
	if err != nil {
		t.Fatalf("IncrementCounter: %v", err)
	}
	if c.Count != 1 {
		t.Fatalf("first increment on absent counter = %d, want 1", c.Count)
	}
}

func TestResetCounter_ThenGetYieldsZero(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	for i := 0; i < 5; i++ {
		if _, err := IncrementCounter(context.Background(), db, domain.CounterVisitor); err != nil {
			t.Fatalf("seed increment: %v", err)
		}
	}

	c, err := ResetCounter(context.Background(), db, domain.CounterVisitor)
	if err != nil {
		t.Fatalf("ResetCounter: %v", err)
	}
	if c.Count != 0 {
		t.Fatalf("reset returned count = %d, want 0", c.Count)
	}

	got, err := GetCounter(context.Background(), db, domain.CounterVisitor)
	if err != nil {
		t.Fatalf("GetCounter after reset: %v", err)
	}
	if got.Count != 0 {
		t.Fatalf("get after reset = %d, want 0", got.Count)
	}
}

func TestResetCounter_CreatesWhenAbsent(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	c, err := ResetCounter(context.Background(), db, domain.CounterVisitor)
	if err != nil {
		t.Fatalf("ResetCounter: %v", err)
	}
	if c.Count != 0 {
		t.Fatalf("reset on absent counter = %d, want 0", c.Count)
	}
}

func TestCounters_AreIndependentByKind(t *testing.T) {
	db := newTestDB(t, &domain.Counter{})

	if _, err := IncrementCounter(context.Background(), db, domain.CounterVisitor); err != nil {
		t.Fatalf("increment visitor: %v", err)
	}
	q, err := GetCounter(context.Background(), db, domain.CounterQuestionRequest)
	if err != nil {
		t.Fatalf("get question counter: %v", err)
	}
	if q.Count != 0 {
		t.Fatalf("question counter affected by visitor increment: %d", q.Count)
	}
}

func TestGetCounter_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := GetCounter(context.Background(), db, domain.CounterVisitor); err == nil {
		t.Fatalf("expected error when table missing")
	}
}
