package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

func TestCreateGalleryImage_SetsFields(t *testing.T) {
	db := newTestDB(t, &domain.GalleryImage{})

	img, err := CreateGalleryImage(context.Background(), db, "Banner", "/uploads/a.png", "banner", 3)
	if err != nil {
		t.Fatalf("CreateGalleryImage: %v", err)
	}
	if img.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if img.Title != "Banner" || img.ImageURL != "/uploads/a.png" || img.Alt != "banner" || img.SortOrder != 3 {
		t.Fatalf("unexpected image: %+v", img)
	}
}

func TestListGalleryImages_OrderedBySortOrderThenInsertion(t *testing.T) {
	db := newTestDB(t, &domain.GalleryImage{})

	base := time.Now().UTC()
	seed := []struct {
		id    string
		order int
	}{
		{"third", 5},
		{"first", 1},
		{"second-a", 2}, // same order as second-b, inserted earlier
		{"second-b", 2},
	}
	for i, s := range seed {
		img := &domain.GalleryImage{
			ID:        s.id,
			Title:     s.id,
			ImageURL:  "https://example.com/" + s.id,
			SortOrder: s.order,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(img).Error; err != nil {
			t.Fatalf("seed %s: %v", s.id, err)
		}
	}

	out, err := ListGalleryImages(context.Background(), db)
	if err != nil {
		t.Fatalf("ListGalleryImages: %v", err)
	}
	want := []string{"first", "second-a", "second-b", "third"}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i, w := range want {
		if out[i].ID != w {
			t.Fatalf("position %d = %s, want %s", i, out[i].ID, w)
		}
	}
}

func TestGetGalleryImage(t *testing.T) {
	db := newTestDB(t, &domain.GalleryImage{})

	img, err := CreateGalleryImage(context.Background(), db, "t", "/uploads/x.png", "", 0)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetGalleryImage(context.Background(), db, img.ID)
	if err != nil {
		t.Fatalf("GetGalleryImage: %v", err)
	}
	if got.ImageURL != "/uploads/x.png" {
		t.Fatalf("ImageURL = %q", got.ImageURL)
	}

	if _, err := GetGalleryImage(context.Background(), db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteGalleryImage_Idempotent(t *testing.T) {
	db := newTestDB(t, &domain.GalleryImage{})

	img, err := CreateGalleryImage(context.Background(), db, "t", "/uploads/x.png", "", 0)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := DeleteGalleryImage(context.Background(), db, img.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := DeleteGalleryImage(context.Background(), db, img.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got: %v", err)
	}
}
