// Package services – ChatRecordService
//
// This file implements the ChatRecordService, which manages saved chat
// transcripts. It validates required fields, captures the display date at
// creation time in the configured locale, and coordinates repository
// operations for listing, question-count increments, aggregates, and
// deletion. Service-level errors (e.g. ErrRecordNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/repo"
)

// ChatRecordRepo defines the repository contract required by
// ChatRecordService.
type ChatRecordRepo interface {
	// CreateChatRecord inserts a new record with the given fields.
	CreateChatRecord(ctx context.Context, db *gorm.DB, title, content, date string) (*domain.ChatRecord, error)

	// ListChatRecords returns all records, newest first.
	ListChatRecords(ctx context.Context, db *gorm.DB) ([]domain.ChatRecord, error)

	// IncrementQuestionCount atomically bumps question_count and returns the
	// updated record, or repo.ErrNotFound.
	IncrementQuestionCount(ctx context.Context, db *gorm.DB, id string) (*domain.ChatRecord, error)

	// DeleteChatRecord removes a record by id (idempotent).
	DeleteChatRecord(ctx context.Context, db *gorm.DB, id string) error

	// QuestionStats returns the question_count sum and the record count.
	QuestionStats(ctx context.Context, db *gorm.DB) (totalCount, totalQuestions int64, err error)
}

// chatRecordRepo adapts the repo free functions to the ChatRecordRepo
// interface.
type chatRecordRepo struct{}

func (chatRecordRepo) CreateChatRecord(ctx context.Context, db *gorm.DB, title, content, date string) (*domain.ChatRecord, error) {
	return repo.CreateChatRecord(ctx, db, title, content, date)
}

func (chatRecordRepo) ListChatRecords(ctx context.Context, db *gorm.DB) ([]domain.ChatRecord, error) {
	return repo.ListChatRecords(ctx, db)
}

func (chatRecordRepo) IncrementQuestionCount(ctx context.Context, db *gorm.DB, id string) (*domain.ChatRecord, error) {
	return repo.IncrementQuestionCount(ctx, db, id)
}

func (chatRecordRepo) DeleteChatRecord(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteChatRecord(ctx, db, id)
}

func (chatRecordRepo) QuestionStats(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	return repo.QuestionStats(ctx, db)
}

// ChatRecordView is the projection returned by List: the admin frontend only
// renders these four fields, so questionCount and createdAt stay internal.
type ChatRecordView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// QuestionTotals aggregates question activity across all chat records.
type QuestionTotals struct {
	TotalCount     int64 `json:"totalCount"`
	TotalQuestions int64 `json:"totalQuestions"`
}

// ChatRecordService provides transcript-level operations. Bulk reads are
// bounded by ListTimeout so a slow scan fails instead of hanging the request.
type ChatRecordService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the chat record repository used by this service.
	Repo ChatRecordRepo

	// ListTimeout bounds full-collection scans (List, Totals).
	ListTimeout time.Duration
	// DateLocale selects the display format of the Date field.
	DateLocale language.Tag
}

// NewChatRecordService constructs a ChatRecordService with the default 10s
// scan bound and Vietnamese display dates (the deployed frontend locale).
func NewChatRecordService(db *gorm.DB) *ChatRecordService {
	return &ChatRecordService{
		DB:          db,
		Repo:        chatRecordRepo{},
		ListTimeout: 10 * time.Second,
		DateLocale:  language.Vietnamese,
	}
}

// List returns every chat record projected to the public view, newest first.
// There is no pagination; the whole collection is returned.
func (s *ChatRecordService) List(ctx context.Context) ([]ChatRecordView, error) {
	ctx, cancel := s.scanContext(ctx)
	defer cancel()

	recs, err := s.Repo.ListChatRecords(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]ChatRecordView, 0, len(recs))
	for _, r := range recs {
		out = append(out, ChatRecordView{ID: r.ID, Title: r.Title, Content: r.Content, Date: r.Date})
	}
	return out, nil
}

// Add validates and persists a new transcript. Title and content are both
// required; the display date is computed here, once, in the service locale.
func (s *ChatRecordService) Add(ctx context.Context, title, content string) (*domain.ChatRecord, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrMissingFields
	}
	date := displayDate(time.Now(), s.DateLocale)
	return s.Repo.CreateChatRecord(ctx, s.DB, title, content, date)
}

// IncrementQuestion bumps questionCount by exactly one on the record with
// the given id and returns the updated record. Returns ErrRecordNotFound
// when the id does not exist.
func (s *ChatRecordService) IncrementQuestion(ctx context.Context, id string) (*domain.ChatRecord, error) {
	rec, err := s.Repo.IncrementQuestionCount(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Totals sums questionCount across all records and counts the records.
// Missing counts are treated as zero by the aggregate query.
func (s *ChatRecordService) Totals(ctx context.Context) (*QuestionTotals, error) {
	ctx, cancel := s.scanContext(ctx)
	defer cancel()

	totalCount, totalQuestions, err := s.Repo.QuestionStats(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return &QuestionTotals{TotalCount: totalCount, TotalQuestions: totalQuestions}, nil
}

// Delete removes a record by id. Absent ids succeed silently: deletes are
// idempotent for both deletable resource types in this API.
func (s *ChatRecordService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteChatRecord(ctx, s.DB, id)
}

// scanContext applies the bulk-scan bound when configured.
func (s *ChatRecordService) scanContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.ListTimeout > 0 {
		return context.WithTimeout(ctx, s.ListTimeout)
	}
	return ctx, func() {}
}

// vietnameseBase is the base language of all Vietnamese tags ("vi", "vi-VN").
var vietnameseBase, _ = language.Vietnamese.Base()

// displayDate renders t the way the frontend locale expects. Vietnamese uses
// day-first d/m/yyyy without zero padding; anything else falls back to the
// US-style m/d/yyyy. The comparison is on the base language so
// region-qualified tags like "vi-VN" format the same as plain "vi".
func displayDate(t time.Time, tag language.Tag) string {
	if base, _ := tag.Base(); base == vietnameseBase {
		return t.Format("2/1/2006")
	}
	return t.Format("1/2/2006")
}
