// Package domain defines the persistence models for chat records, gallery
// images, and singleton counters. These types are mapped with GORM and form
// the core data layer of the chatbot admin backend.
package domain

import "time"

// Counter kinds. Each kind has at most one row, enforced by the primary key
// on Kind.
const (
	CounterVisitor         = "visitor"
	CounterQuestionRequest = "question_request"
)

// ChatRecord is a saved chat transcript shown in the admin panel.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Title / Content: required transcript metadata and body.
//   - Date: display string captured once at creation time in the configured
//     locale format; never recomputed.
//   - QuestionCount: number of follow-up questions asked against this record;
//     only ever mutated through an atomic increment.
//   - CreatedAt: set at creation, immutable; drives newest-first listing.
type ChatRecord struct {
	ID            string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Title         string    `json:"title"         gorm:"type:varchar(255);not null"`
	Content       string    `json:"content"       gorm:"type:text;not null"`
	Date          string    `json:"date"          gorm:"type:varchar(32);not null"`
	QuestionCount int64     `json:"questionCount" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"createdAt"     gorm:"index"`
}

// TableName returns the database table name for ChatRecord.
func (ChatRecord) TableName() string { return "chat_records" }

// GalleryImage is one entry of the carousel gallery. ImageURL either points
// into the managed upload namespace (/uploads/...) or is an external URL
// supplied by the caller.
//
// SortOrder controls display order (ascending); ties are broken by insertion
// time, hence the CreatedAt index.
type GalleryImage struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title"     gorm:"type:varchar(255);not null;default:'Carousel Image'"`
	ImageURL  string    `json:"imageUrl"  gorm:"type:text;not null"`
	Alt       string    `json:"alt"       gorm:"type:varchar(255);not null;default:''"`
	SortOrder int       `json:"order"     gorm:"column:sort_order;not null;default:0;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName returns the database table name for GalleryImage.
func (GalleryImage) TableName() string { return "gallery_images" }

// Counter is a singleton per Kind. The primary key on Kind guarantees at most
// one row per counter kind and gives upserts a stable conflict target, so
// concurrent find-or-create calls can never produce duplicate rows.
type Counter struct {
	Kind        string    `json:"-"           gorm:"type:varchar(32);primaryKey"`
	Count       int64     `json:"count"       gorm:"not null;default:0"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// TableName returns the database table name for Counter.
func (Counter) TableName() string { return "counters" }
