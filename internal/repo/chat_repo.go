// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the ChatRecord
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateChatRecord inserts a new ChatRecord with the given title, content,
// and pre-formatted display date. The ID is a randomly generated UUID and
// CreatedAt is set to UTC. QuestionCount starts at zero.
func CreateChatRecord(ctx context.Context, db *gorm.DB, title, content, date string) (*domain.ChatRecord, error) {
	rec := &domain.ChatRecord{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListChatRecords returns all chat records ordered by creation time
// descending (most recent first). It returns an empty slice when the table
// is empty. On DB error, it returns the error.
func ListChatRecords(ctx context.Context, db *gorm.DB) ([]domain.ChatRecord, error) {
	var out []domain.ChatRecord
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// IncrementQuestionCount bumps question_count by one for the record with the
// given id and returns the updated row. The increment happens inside the
// database (UPDATE ... SET question_count = question_count + 1) so concurrent
// increments serialize at the storage layer and no update is lost.
//
// Returns ErrNotFound when no record with that id exists.
func IncrementQuestionCount(ctx context.Context, db *gorm.DB, id string) (*domain.ChatRecord, error) {
	res := db.WithContext(ctx).
		Model(&domain.ChatRecord{}).
		Where("id = ?", id).
		UpdateColumn("question_count", gorm.Expr("question_count + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var rec domain.ChatRecord
	if err := db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteChatRecord removes a record by id. Deleting a missing id is not an
// error: the operation is idempotent and reports success either way.
func DeleteChatRecord(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Delete(&domain.ChatRecord{}, "id = ?", id).Error
}
