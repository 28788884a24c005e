// Package services – GalleryService
//
// This file implements the GalleryService, which manages the carousel image
// gallery. Images arrive three ways: metadata-only (caller supplies a URL),
// multipart file upload, and inline base64 payload. Both upload paths funnel
// through one ingestion routine: write the file into the managed upload
// directory, create the metadata record, and roll the file back (best
// effort) when record creation fails. Deleting an image also removes its
// file when the URL lives under the upload namespace; file removal failures
// are logged, never surfaced.
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/repo"
)

// UploadURLPrefix is the public namespace under which uploaded files are
// served. Image URLs outside this prefix are treated as external and never
// touch the filesystem.
const UploadURLPrefix = "/uploads/"

// DefaultImageTitle is applied when a gallery image is created without one.
const DefaultImageTitle = "Carousel Image"

// allowedImageExt maps accepted upload mime types to a fallback file
// extension used when the original filename has none.
var allowedImageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// base64Prefix matches an optional data-URI header on base64 payloads.
var base64Prefix = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,`)

// FileStore abstracts the managed upload directory.
type FileStore interface {
	// Save persists data under the given file name.
	Save(name string, data []byte) error
	// Remove deletes the named file.
	Remove(name string) error
}

// GalleryRepo defines the repository contract required by GalleryService.
type GalleryRepo interface {
	CreateGalleryImage(ctx context.Context, db *gorm.DB, title, imageURL, alt string, order int) (*domain.GalleryImage, error)
	ListGalleryImages(ctx context.Context, db *gorm.DB) ([]domain.GalleryImage, error)
	GetGalleryImage(ctx context.Context, db *gorm.DB, id string) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, db *gorm.DB, id string) error
}

// galleryRepo adapts the repo free functions to the GalleryRepo interface.
type galleryRepo struct{}

func (galleryRepo) CreateGalleryImage(ctx context.Context, db *gorm.DB, title, imageURL, alt string, order int) (*domain.GalleryImage, error) {
	return repo.CreateGalleryImage(ctx, db, title, imageURL, alt, order)
}

func (galleryRepo) ListGalleryImages(ctx context.Context, db *gorm.DB) ([]domain.GalleryImage, error) {
	return repo.ListGalleryImages(ctx, db)
}

func (galleryRepo) GetGalleryImage(ctx context.Context, db *gorm.DB, id string) (*domain.GalleryImage, error) {
	return repo.GetGalleryImage(ctx, db, id)
}

func (galleryRepo) DeleteGalleryImage(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteGalleryImage(ctx, db, id)
}

// GalleryService provides carousel image operations.
type GalleryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the gallery repository used by this service.
	Repo GalleryRepo
	// Files is the managed upload directory.
	Files FileStore
}

// NewGalleryService constructs a GalleryService over the given database and
// file store.
func NewGalleryService(db *gorm.DB, files FileStore) *GalleryService {
	return &GalleryService{DB: db, Repo: galleryRepo{}, Files: files}
}

// List returns all images ordered by their display order ascending, ties in
// insertion order.
func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.Repo.ListGalleryImages(ctx, s.DB)
}

// Add creates a metadata-only image whose URL is supplied by the caller.
// Title and alt default when blank; order defaults to zero upstream.
func (s *GalleryService) Add(ctx context.Context, title, imageURL, alt string, order int) (*domain.GalleryImage, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrMissingImageURL
	}
	return s.Repo.CreateGalleryImage(ctx, s.DB, defaultTitle(title), imageURL, alt, order)
}

// UploadFile ingests a raw uploaded file. The mime type is validated before
// anything is written; rejected types never reach the upload directory.
func (s *GalleryService) UploadFile(ctx context.Context, data []byte, mimeType, originalName, title, alt string, order int) (*domain.GalleryImage, error) {
	fallbackExt, ok := allowedImageExt[normalizeMime(mimeType)]
	if !ok {
		return nil, ErrUnsupportedImageType
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = fallbackExt
	}
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	return s.ingest(ctx, data, name, title, alt, order)
}

// UploadBase64 ingests an inline base64 payload, with or without a data-URI
// prefix. Files from this path are always stored with a .png extension, a
// simplification the frontend relies on.
func (s *GalleryService) UploadBase64(ctx context.Context, imageData, title, alt string, order int) (*domain.GalleryImage, error) {
	imageData = strings.TrimSpace(imageData)
	if imageData == "" {
		return nil, ErrMissingImageData
	}
	raw, err := base64.StdEncoding.DecodeString(base64Prefix.ReplaceAllString(imageData, ""))
	if err != nil {
		return nil, ErrInvalidImageData
	}
	name := fmt.Sprintf("base64-%d-%d.png", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return s.ingest(ctx, raw, name, title, alt, order)
}

// Delete removes the metadata record by id and, when the image lived under
// the upload namespace, attempts to remove the underlying file. A missing
// record succeeds silently (idempotent delete, same as chat records), and a
// failed file removal is logged but never fails the request.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	img, err := s.Repo.GetGalleryImage(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if err := s.Repo.DeleteGalleryImage(ctx, s.DB, id); err != nil {
		return err
	}
	if name, ok := strings.CutPrefix(img.ImageURL, UploadURLPrefix); ok {
		if err := s.Files.Remove(name); err != nil {
			log.Warn().Err(err).Str("image_id", id).Str("file", name).
				Msg("gallery: could not remove uploaded file")
		}
	}
	return nil
}

// ingest is the single write path shared by both upload flows: persist the
// file, then the record, and undo the file write when the record fails.
func (s *GalleryService) ingest(ctx context.Context, data []byte, name, title, alt string, order int) (*domain.GalleryImage, error) {
	if err := s.Files.Save(name, data); err != nil {
		return nil, err
	}
	img, err := s.Repo.CreateGalleryImage(ctx, s.DB, defaultTitle(title), UploadURLPrefix+name, alt, order)
	if err != nil {
		if rmErr := s.Files.Remove(name); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", name).
				Msg("gallery: could not roll back orphaned upload")
		}
		return nil, err
	}
	return img, nil
}

// defaultTitle applies the placeholder title when none was supplied.
func defaultTitle(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return DefaultImageTitle
}

// normalizeMime lowercases the media type and drops any parameters
// (e.g. "image/png; charset=binary" -> "image/png").
func normalizeMime(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}

// isNotFound reports whether err is the repo-level missing-record sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
