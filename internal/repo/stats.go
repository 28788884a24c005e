// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries over chat
// records used by the question statistics endpoint.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

// QuestionStats returns aggregate metadata over all chat records: the sum of
// question_count across every row and the total number of rows. Records with
// a NULL question_count contribute zero to the sum.
//
// Return values:
//   - totalCount:     sum of question_count over all records
//   - totalQuestions: number of chat records
//   - err:            database error, if any
func QuestionStats(ctx context.Context, db *gorm.DB) (totalCount, totalQuestions int64, err error) {
	var row struct {
		TotalCount     int64
		TotalQuestions int64
	}
	err = db.WithContext(ctx).
		Model(&domain.ChatRecord{}).
		Select("COALESCE(SUM(question_count), 0) AS total_count, COUNT(*) AS total_questions").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.TotalCount, row.TotalQuestions, nil
}
