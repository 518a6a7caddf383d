package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/records"
)

type logMoodRequest struct {
	Category   string     `json:"category"`
	OccurredAt *time.Time `json:"occurred_at"`
	Note       string     `json:"note"`
}

// POST /api/moods
// body: { "category": "happy", "occurred_at": "2024-01-01T08:00:00Z", "note": "..." }
func (h *Handler) LogMood(c *gin.Context) {
	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	var occurredAt time.Time
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	mood, err := records.LogMood(c.Request.Context(), h.db, h.user, req.Category, occurredAt, req.Note)
	if err != nil {
		h.respondStoreError(c, "log_mood", err)
		return
	}
	RespondCreated(c, mood)
}

// GET /api/moods
func (h *Handler) ListMoods(c *gin.Context) {
	moods, err := records.ListMoods(c.Request.Context(), h.db, h.user)
	if err != nil {
		h.respondStoreError(c, "list_moods", err)
		return
	}
	RespondOK(c, moods)
}

// GET /api/moods/:id
func (h *Handler) GetMood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	mood, err := records.GetMood(c.Request.Context(), h.db, h.user, id)
	if err != nil {
		h.respondStoreError(c, "get_mood", err)
		return
	}
	RespondOK(c, mood)
}

// DELETE /api/moods/:id
func (h *Handler) DeleteMood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := records.DeleteMood(c.Request.Context(), h.db, h.user, id); err != nil {
		h.respondStoreError(c, "delete_mood", err)
		return
	}
	c.Status(http.StatusNoContent)
}
