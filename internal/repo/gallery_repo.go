// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// GalleryImage model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

// CreateGalleryImage inserts a new gallery image row. The ID is a randomly
// generated UUID and CreatedAt is set to UTC. Defaults for title/alt/order
// are applied by the caller (service layer), not here.
func CreateGalleryImage(ctx context.Context, db *gorm.DB, title, imageURL, alt string, order int) (*domain.GalleryImage, error) {
	img := &domain.GalleryImage{
		ID:        uuid.NewString(),
		Title:     title,
		ImageURL:  imageURL,
		Alt:       alt,
		SortOrder: order,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

// ListGalleryImages returns all gallery images ordered by sort_order
// ascending; rows sharing a sort_order keep insertion order (created_at
// ascending as tiebreaker).
func ListGalleryImages(ctx context.Context, db *gorm.DB) ([]domain.GalleryImage, error) {
	var out []domain.GalleryImage
	err := db.WithContext(ctx).
		Order("sort_order asc, created_at asc").
		Find(&out).Error
	return out, err
}

// GetGalleryImage fetches a single gallery image by id, or ErrNotFound when
// it does not exist.
func GetGalleryImage(ctx context.Context, db *gorm.DB, id string) (*domain.GalleryImage, error) {
	var img domain.GalleryImage
	if err := db.WithContext(ctx).First(&img, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteGalleryImage removes a gallery image row by id. Deleting a missing
// id is not an error, matching the idempotent delete semantics of chat
// records.
func DeleteGalleryImage(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Delete(&domain.GalleryImage{}, "id = ?", id).Error
}
