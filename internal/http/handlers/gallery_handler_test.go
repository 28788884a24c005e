package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/services"
)

// stubGalleryService satisfies GalleryService with canned results and records
// the arguments of the last upload call.
type stubGalleryService struct {
	imgs []domain.GalleryImage
	img  *domain.GalleryImage
	err  error

	lastMime  string
	lastName  string
	lastTitle string
	lastOrder int
}

func (s *stubGalleryService) List(context.Context) ([]domain.GalleryImage, error) {
	return s.imgs, s.err
}

func (s *stubGalleryService) Add(_ context.Context, title, imageURL, alt string, order int) (*domain.GalleryImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.GalleryImage{ID: "new", Title: title, ImageURL: imageURL, Alt: alt, SortOrder: order}, nil
}

func (s *stubGalleryService) UploadFile(_ context.Context, _ []byte, mimeType, originalName, title, _ string, order int) (*domain.GalleryImage, error) {
	s.lastMime, s.lastName, s.lastTitle, s.lastOrder = mimeType, originalName, title, order
	return s.img, s.err
}

func (s *stubGalleryService) UploadBase64(_ context.Context, _, title, _ string, order int) (*domain.GalleryImage, error) {
	s.lastTitle, s.lastOrder = title, order
	return s.img, s.err
}

func (s *stubGalleryService) Delete(context.Context, string) error {
	return s.err
}

func newGalleryRouter(svc GalleryService) *gin.Engine {
	h := NewGalleryHandler(svc)
	r := gin.New()
	r.GET("/api/carousel", h.List)
	r.POST("/api/carousel", h.Create)
	r.POST("/api/carousel/upload", h.Upload)
	r.POST("/api/carousel/upload-base64", h.UploadBase64)
	r.DELETE("/api/carousel/:id", h.Delete)
	return r
}

// multipartUpload builds a multipart body with an image part and form fields.
func multipartUpload(t *testing.T, filename, contentType string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("image-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestGalleryHandler_Create_OK(t *testing.T) {
	svc := &stubGalleryService{}
	w := perform(t, newGalleryRouter(svc), http.MethodPost, "/api/carousel",
		"application/json", `{"title":"Banner","imageUrl":"https://x/a.png","alt":"a","order":2}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	body := decode(t, w)
	if body["imageUrl"] != "https://x/a.png" {
		t.Fatalf("imageUrl = %v", body["imageUrl"])
	}
	if body["order"] != float64(2) {
		t.Fatalf("order = %v, want 2", body["order"])
	}
}

func TestGalleryHandler_Create_MissingURL(t *testing.T) {
	svc := &stubGalleryService{err: services.ErrMissingImageURL}
	w := perform(t, newGalleryRouter(svc), http.MethodPost, "/api/carousel",
		"application/json", `{"title":"no url"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["error"] != "Image URL is required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGalleryHandler_Upload_OK(t *testing.T) {
	svc := &stubGalleryService{img: &domain.GalleryImage{ID: "up", ImageURL: "/uploads/1-2.png"}}
	buf, ct := multipartUpload(t, "photo.png", "image/png", map[string]string{
		"title": "Hero",
		"alt":   "hero",
		"order": "3",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/carousel/upload", buf)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	newGalleryRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["success"] != true || body["message"] != "Image uploaded successfully" {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.lastMime != "image/png" || svc.lastName != "photo.png" {
		t.Fatalf("service got mime=%q name=%q", svc.lastMime, svc.lastName)
	}
	if svc.lastTitle != "Hero" || svc.lastOrder != 3 {
		t.Fatalf("service got title=%q order=%d", svc.lastTitle, svc.lastOrder)
	}
}

func TestGalleryHandler_Upload_NoFile(t *testing.T) {
	svc := &stubGalleryService{}
	w := perform(t, newGalleryRouter(svc), http.MethodPost, "/api/carousel/upload",
		"application/json", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["error"] != "No image file provided" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGalleryHandler_Upload_UnsupportedType(t *testing.T) {
	svc := &stubGalleryService{err: services.ErrUnsupportedImageType}
	buf, ct := multipartUpload(t, "doc.pdf", "application/pdf", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/carousel/upload", buf)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	newGalleryRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["success"] != false {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGalleryHandler_Upload_BadOrderFieldDefaultsToZero(t *testing.T) {
	svc := &stubGalleryService{img: &domain.GalleryImage{ID: "up"}}
	buf, ct := multipartUpload(t, "a.png", "image/png", map[string]string{"order": "not-a-number"})

	req := httptest.NewRequest(http.MethodPost, "/api/carousel/upload", buf)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	newGalleryRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if svc.lastOrder != 0 {
		t.Fatalf("order = %d, want 0", svc.lastOrder)
	}
}

func TestGalleryHandler_UploadBase64_Validation(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"missing", services.ErrMissingImageData, "No image data provided"},
		{"invalid", services.ErrInvalidImageData, "Invalid base64 image data"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubGalleryService{err: tc.err}
			w := perform(t, newGalleryRouter(svc), http.MethodPost, "/api/carousel/upload-base64",
				"application/json", `{"imageData":"whatever"}`)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body := decode(t, w); body["error"] != tc.wantMsg {
				t.Fatalf("error = %v, want %q", body["error"], tc.wantMsg)
			}
		})
	}
}

func TestGalleryHandler_UploadBase64_OK(t *testing.T) {
	svc := &stubGalleryService{img: &domain.GalleryImage{ID: "b64", ImageURL: "/uploads/base64-1-2.png"}}
	w := perform(t, newGalleryRouter(svc), http.MethodPost, "/api/carousel/upload-base64",
		"application/json", `{"imageData":"aGk=","title":"T","order":1}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	body := decode(t, w)
	if body["success"] != true {
		t.Fatalf("unexpected body: %v", body)
	}
	if svc.lastTitle != "T" || svc.lastOrder != 1 {
		t.Fatalf("service got title=%q order=%d", svc.lastTitle, svc.lastOrder)
	}
}

func TestGalleryHandler_Delete_OK(t *testing.T) {
	svc := &stubGalleryService{}
	w := perform(t, newGalleryRouter(svc), http.MethodDelete, "/api/carousel/some-id", "", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["message"] != "Image deleted successfully" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestGalleryHandler_Delete_Failure(t *testing.T) {
	svc := &stubGalleryService{err: errors.New("db down")}
	w := perform(t, newGalleryRouter(svc), http.MethodDelete, "/api/carousel/some-id", "", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decode(t, w); body["error"] != "Failed to delete image" {
		t.Fatalf("error = %v", body["error"])
	}
}
