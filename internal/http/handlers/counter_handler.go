// Counter HTTP handlers.
//
// This file exposes the singleton counter endpoints:
//   - GET  /api/visitor                    (read, create-on-first-access)
//   - POST /api/visitor                    (increment)
//   - POST /api/visitor/reset              (reset to zero)
//   - GET  /api/questions/request          (read)
//   - POST /api/questions/request          (increment)
//   - POST /api/questions/request/reset    (reset to zero)
//
// Both counters share one handler type; only the bound service and the
// user-facing messages differ. Operational messages are Vietnamese because
// they surface directly in the deployed frontend; the details field always
// carries the underlying technical cause.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndevra/go-chatbot-backend/internal/domain"
)

// CounterService defines the counter operations consumed by HTTP handlers.
// Implementations retry transient failures internally (see services).
type CounterService interface {
	// Get returns the current value, creating the singleton when absent.
	Get(ctx context.Context) (*domain.Counter, error)
	// Increment bumps the counter by one and returns the updated value.
	Increment(ctx context.Context) (*domain.Counter, error)
	// Reset sets the counter to zero and returns the updated value.
	Reset(ctx context.Context) (*domain.Counter, error)
}

// CounterMessages carries the per-kind user-facing strings.
type CounterMessages struct {
	// GetFailed is shown when a read ultimately fails.
	GetFailed string
	// UpdateFailed is shown when an increment ultimately fails.
	UpdateFailed string
	// ResetDone confirms a successful reset.
	ResetDone string
	// ResetFailed is shown when a reset ultimately fails.
	ResetFailed string
}

// VisitorMessages are the strings for the visitor counter endpoints.
var VisitorMessages = CounterMessages{
	GetFailed:    "Không thể lấy số lượt truy cập",
	UpdateFailed: "Không thể cập nhật lượt truy cập",
	ResetDone:    "Đã đặt lại bộ đếm lượt truy cập",
	ResetFailed:  "Không thể đặt lại bộ đếm lượt truy cập",
}

// QuestionRequestMessages are the strings for the question-request counter
// endpoints.
var QuestionRequestMessages = CounterMessages{
	GetFailed:    "Không thể lấy số câu hỏi đã gửi",
	UpdateFailed: "Không thể cập nhật số câu hỏi",
	ResetDone:    "Đã đặt lại bộ đếm câu hỏi",
	ResetFailed:  "Không thể đặt lại bộ đếm câu hỏi",
}

// CounterHandler serves one counter kind.
type CounterHandler struct {
	svc  CounterService
	msgs CounterMessages
}

// NewCounterHandler binds a counter service to its user-facing messages.
func NewCounterHandler(svc CounterService, msgs CounterMessages) *CounterHandler {
	return &CounterHandler{svc: svc, msgs: msgs}
}

// Get godoc
// @ID          getCounter
// @Summary     Read a counter
// @Description Returns the current count, creating the singleton with count=0 on first access.
// @Tags        Counters
// @Produce     json
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/visitor [get]
func (h *CounterHandler) Get(c *gin.Context) {
	cnt, err := h.svc.Get(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   h.msgs.GetFailed,
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{
		"success":     true,
		"count":       cnt.Count,
		"lastUpdated": cnt.LastUpdated,
	})
}

// Increment godoc
// @ID          incrementCounter
// @Summary     Increment a counter
// @Description Atomically adds one and returns the updated count.
// @Tags        Counters
// @Produce     json
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/visitor [post]
func (h *CounterHandler) Increment(c *gin.Context) {
	cnt, err := h.svc.Increment(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   h.msgs.UpdateFailed,
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{
		"success":     true,
		"count":       cnt.Count,
		"lastUpdated": cnt.LastUpdated,
	})
}

// Reset godoc
// @ID          resetCounter
// @Summary     Reset a counter to zero
// @Tags        Counters
// @Produce     json
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]any
// @Router      /api/visitor/reset [post]
func (h *CounterHandler) Reset(c *gin.Context) {
	cnt, err := h.svc.Reset(c.Request.Context())
	if err != nil {
		failJSON(c, http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   h.msgs.ResetFailed,
			"details": err.Error(),
		})
		return
	}
	ok(c, http.StatusOK, gin.H{
		"success": true,
		"message": h.msgs.ResetDone,
		"count":   cnt.Count,
	})
}
