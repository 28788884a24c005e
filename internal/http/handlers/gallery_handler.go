// Gallery HTTP handlers.
//
// This file exposes REST endpoints for the carousel image gallery:
//   - GET    /api/carousel                (list by display order)
//   - POST   /api/carousel                (create from an existing URL)
//   - POST   /api/carousel/upload         (multipart file upload)
//   - POST   /api/carousel/upload-base64  (inline base64 upload)
//   - DELETE /api/carousel/:id            (delete record + managed file)
//
// The two upload handlers only extract bytes from their transport encoding;
// everything after that (filename generation, file write, record creation,
// rollback) is one shared service routine.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/services"
	"github.com/ndevra/go-chatbot-backend/internal/utils"
)

// GalleryService defines gallery operations consumed by HTTP handlers.
type GalleryService interface {
	// List returns all images ordered by display order ascending.
	List(ctx context.Context) ([]domain.GalleryImage, error)
	// Add creates a metadata-only image from a caller-supplied URL.
	Add(ctx context.Context, title, imageURL, alt string, order int) (*domain.GalleryImage, error)
	// UploadFile ingests raw uploaded bytes after mime validation.
	UploadFile(ctx context.Context, data []byte, mimeType, originalName, title, alt string, order int) (*domain.GalleryImage, error)
	// UploadBase64 ingests an inline base64 payload.
	UploadBase64(ctx context.Context, imageData, title, alt string, order int) (*domain.GalleryImage, error)
	// Delete removes the record and, for managed uploads, the file.
	Delete(ctx context.Context, id string) error
}

// GalleryHandler serves the carousel endpoints.
type GalleryHandler struct {
	svc GalleryService
}

// NewGalleryHandler binds the handler to its service.
func NewGalleryHandler(svc GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// CreateImageRequest is the JSON payload for creating an image from a URL.
type CreateImageRequest struct {
	Title    string `json:"title"    example:"Khuôn viên trường"`
	ImageURL string `json:"imageUrl" example:"https://example.com/a.jpg"`
	Alt      string `json:"alt"      example:"campus"`
	Order    int    `json:"order"    example:"0"`
}

// UploadBase64Request is the JSON payload for the base64 upload path.
type UploadBase64Request struct {
	Title     string `json:"title"`
	ImageData string `json:"imageData" example:"data:image/png;base64,iVBORw0..."`
	Alt       string `json:"alt"`
	Order     int    `json:"order"`
}

// List godoc
// @ID          listGalleryImages
// @Summary     List carousel images
// @Description Returns all images ordered by display order ascending; ties keep insertion order.
// @Tags        Gallery
// @Produce     json
// @Success     200 {array}  domain.GalleryImage
// @Failure     500 {object} map[string]any
// @Router      /api/carousel [get]
func (h *GalleryHandler) List(c *gin.Context) {
	imgs, err := h.svc.List(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch images",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, imgs)
}

// Create godoc
// @ID          createGalleryImage
// @Summary     Create an image from an existing URL
// @Tags        Gallery
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateImageRequest true "Image metadata"
// @Success     201 {object} domain.GalleryImage
// @Failure     400 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/carousel [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	img, err := h.svc.Add(c.Request.Context(), req.Title, req.ImageURL, req.Alt, req.Order)
	if err != nil {
		if errors.Is(err, services.ErrMissingImageURL) {
			failJSON(c, http.StatusBadRequest, gin.H{"error": "Image URL is required"})
			return
		}
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to save image",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusCreated, img)
}

// Upload godoc
// @ID          uploadGalleryImage
// @Summary     Upload an image file (multipart)
// @Description Accepts image/jpeg, image/png, image/gif, image/webp. The file field is "image".
// @Tags        Gallery
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file   true  "Image file"
// @Param       title formData string false "Display title"
// @Param       alt   formData string false "Alt text"
// @Param       order formData int    false "Display order"
// @Success     201 {object} map[string]any
// @Failure     400 {object} map[string]any
// @Router      /api/carousel/upload [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "Could not read uploaded file", "details": err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "Could not read uploaded file", "details": err.Error()})
		return
	}

	img, err := h.svc.UploadFile(
		c.Request.Context(),
		data,
		fh.Header.Get("Content-Type"),
		fh.Filename,
		c.PostForm("title"),
		c.PostForm("alt"),
		utils.AtoiDefault(c.PostForm("order"), 0),
	)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageType) {
			failJSON(c, http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		// Record-creation failures after the file write surface as 400; the
		// service already rolled the file back.
		failJSON(c, http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Failed to upload image",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    img,
	})
}

// UploadBase64 godoc
// @ID          uploadGalleryImageBase64
// @Summary     Upload an image as inline base64
// @Tags        Gallery
// @Accept      json
// @Produce     json
// @Param       body body handlers.UploadBase64Request true "Base64 payload"
// @Success     201 {object} map[string]any
// @Failure     400 {object} map[string]any
// @Router      /api/carousel/upload-base64 [post]
func (h *GalleryHandler) UploadBase64(c *gin.Context) {
	var req UploadBase64Request
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "No image data provided"})
		return
	}

	img, err := h.svc.UploadBase64(c.Request.Context(), req.ImageData, req.Title, req.Alt, req.Order)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingImageData):
			failJSON(c, http.StatusBadRequest, gin.H{"error": "No image data provided"})
		case errors.Is(err, services.ErrInvalidImageData):
			failJSON(c, http.StatusBadRequest, gin.H{"error": "Invalid base64 image data"})
		default:
			failJSON(c, http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Failed to upload image",
				"details": err.Error(),
			})
		}
		return
	}
	ok(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    img,
	})
}

// Delete godoc
// @ID          deleteGalleryImage
// @Summary     Delete a carousel image
// @Description Removes the metadata record; files under /uploads/ are removed best effort.
// @Tags        Gallery
// @Produce     json
// @Param       id path string true "Image ID"
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/carousel/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete image",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
