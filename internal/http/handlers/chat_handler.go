// Chat record HTTP handlers.
//
// This file exposes REST endpoints for saved chat transcripts:
//   - GET    /api/data                    (list, newest first)
//   - POST   /api/data                    (create)
//   - POST   /api/data/:id/increment      (bump questionCount)
//   - GET    /api/questions/total-count   (aggregate)
//   - DELETE /api/data/:id                (delete, idempotent)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into the response shapes the admin
// frontend expects.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
	"github.com/ndevra/go-chatbot-backend/internal/services"
)

// ChatRecordService defines transcript operations consumed by HTTP handlers.
type ChatRecordService interface {
	// List returns all records projected to the public view, newest first.
	List(ctx context.Context) ([]services.ChatRecordView, error)
	// Add validates and persists a new transcript.
	Add(ctx context.Context, title, content string) (*domain.ChatRecord, error)
	// IncrementQuestion bumps questionCount by one, or ErrRecordNotFound.
	IncrementQuestion(ctx context.Context, id string) (*domain.ChatRecord, error)
	// Totals aggregates question counts across all records.
	Totals(ctx context.Context) (*services.QuestionTotals, error)
	// Delete removes a record by id (idempotent).
	Delete(ctx context.Context, id string) error
}

// ChatRecordHandler serves the transcript endpoints.
type ChatRecordHandler struct {
	svc ChatRecordService
}

// NewChatRecordHandler binds the handler to its service.
func NewChatRecordHandler(svc ChatRecordService) *ChatRecordHandler {
	return &ChatRecordHandler{svc: svc}
}

// CreateChatRecordRequest is the JSON payload for saving a transcript.
type CreateChatRecordRequest struct {
	Title   string `json:"title"   example:"Tư vấn tuyển sinh"`
	Content string `json:"content" example:"Q: ... A: ..."`
}

// List godoc
// @ID          listChatRecords
// @Summary     List chat records
// @Description Returns every saved transcript, newest first. No pagination.
// @Tags        ChatRecords
// @Produce     json
// @Success     200 {array}  services.ChatRecordView
// @Failure     500 {object} map[string]any
// @Router      /api/data [get]
func (h *ChatRecordHandler) List(c *gin.Context) {
	recs, err := h.svc.List(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch data",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, recs)
}

// Create godoc
// @ID          createChatRecord
// @Summary     Save a chat transcript
// @Tags        ChatRecords
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateChatRecordRequest true "Transcript payload"
// @Success     201 {object} services.ChatRecordView
// @Failure     400 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/data [post]
func (h *ChatRecordHandler) Create(c *gin.Context) {
	var req CreateChatRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	rec, err := h.svc.Add(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			failJSON(c, http.StatusBadRequest, gin.H{"error": "Title and content are required"})
			return
		}
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to save data",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusCreated, services.ChatRecordView{
		ID:      rec.ID,
		Title:   rec.Title,
		Content: rec.Content,
		Date:    rec.Date,
	})
}

// IncrementQuestion godoc
// @ID          incrementQuestionCount
// @Summary     Increment a record's question count
// @Tags        ChatRecords
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} map[string]any
// @Failure     404 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/data/{id}/increment [post]
func (h *ChatRecordHandler) IncrementQuestion(c *gin.Context) {
	rec, err := h.svc.IncrementQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			failJSON(c, http.StatusNotFound, gin.H{"success": false, "error": "Record not found"})
			return
		}
		failJSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Không thể cập nhật số câu hỏi",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{
		"success":       true,
		"id":            rec.ID,
		"title":         rec.Title,
		"questionCount": rec.QuestionCount,
	})
}

// Totals godoc
// @ID          totalQuestionCount
// @Summary     Aggregate question counts over all records
// @Tags        ChatRecords
// @Produce     json
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/questions/total-count [get]
func (h *ChatRecordHandler) Totals(c *gin.Context) {
	t, err := h.svc.Totals(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to compute totals",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{
		"success":        true,
		"totalCount":     t.TotalCount,
		"totalQuestions": t.TotalQuestions,
	})
}

// Delete godoc
// @ID          deleteChatRecord
// @Summary     Delete a chat record
// @Description Removes the record by id. Deleting a missing id still succeeds.
// @Tags        ChatRecords
// @Produce     json
// @Param       id path string true "Record ID"
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/data/{id} [delete]
func (h *ChatRecordHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete data",
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
