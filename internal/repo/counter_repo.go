// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the singleton
// Counter model.
//
// Every operation here is an atomic upsert keyed on the counter kind. The
// primary key on counters.kind is the conflict target, so the classic
// find-or-create race (two concurrent first accesses each inserting a row)
// cannot produce duplicates, and increments are applied inside the database
// (count = count + 1) rather than read-modify-write in the application.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

// GetCounter loads the singleton counter for kind, creating it with count=0
// when absent. The create-if-absent is a single INSERT ... ON CONFLICT DO
// NOTHING, followed by a read of the authoritative row.
func GetCounter(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	seed := domain.Counter{Kind: kind, Count: 0, LastUpdated: time.Now().UTC()}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}},
			DoNothing: true,
		}).
		Create(&seed).Error
	if err != nil {
		return nil, err
	}
	return readCounter(ctx, db, kind)
}

// IncrementCounter atomically adds one to the counter for kind, creating it
// with count=1 when absent, and returns the updated row.
func IncrementCounter(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	now := time.Now().UTC()
	seed := domain.Counter{Kind: kind, Count: 1, LastUpdated: now}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "kind"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":        gorm.Expr("count + 1"),
				"last_updated": now,
			}),
		}).
		Create(&seed).Error
	if err != nil {
		return nil, err
	}
	return readCounter(ctx, db, kind)
}

// ResetCounter sets the counter for kind back to zero, creating it when
// absent, and returns the updated row.
func ResetCounter(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	now := time.Now().UTC()
	seed := domain.Counter{Kind: kind, Count: 0, LastUpdated: now}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "kind"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":        int64(0),
				"last_updated": now,
			}),
		}).
		Create(&seed).Error
	if err != nil {
		return nil, err
	}
	return readCounter(ctx, db, kind)
}

// readCounter fetches the singleton row for kind.
func readCounter(ctx context.Context, db *gorm.DB, kind string) (*domain.Counter, error) {
	var c domain.Counter
	if err := db.WithContext(ctx).First(&c, "kind = ?", kind).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
