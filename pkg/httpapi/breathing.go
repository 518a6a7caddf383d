package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/quotes"
	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

type logBreathingRequest struct {
	Minutes   int        `json:"duration_minutes"`
	Kind      string     `json:"type"`
	SessionAt *time.Time `json:"session_at"`
}

// POST /api/breathing
// body: { "duration_minutes": 5, "type": "box", "session_at": "2024-01-01T08:00:00Z" }
func (h *Handler) LogBreathingSession(c *gin.Context) {
	var req logBreathingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	var sessionAt time.Time
	if req.SessionAt != nil {
		sessionAt = *req.SessionAt
	}

	session, err := records.LogBreathingSession(c.Request.Context(), h.db, h.user, req.Minutes, req.Kind, sessionAt)
	if err != nil {
		h.respondStoreError(c, "log_breathing_session", err)
		return
	}
	RespondCreated(c, session)
}

// GET /api/breathing
func (h *Handler) ListBreathingSessions(c *gin.Context) {
	sessions, err := records.ListBreathingSessions(c.Request.Context(), h.db, h.user)
	if err != nil {
		h.respondStoreError(c, "list_breathing_sessions", err)
		return
	}
	RespondOK(c, sessions)
}

// DELETE /api/breathing/:id
func (h *Handler) DeleteBreathingSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := records.DeleteBreathingSession(c.Request.Context(), h.db, h.user, id); err != nil {
		h.respondStoreError(c, "delete_breathing_session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/quotes/mood?mood=anxious
// An unrecognized or missing mood gets a neutral quote.
func (h *Handler) GetMoodQuote(c *gin.Context) {
	category, _ := wellness.ParseCategory(c.Query("mood"))
	RespondOK(c, quotes.Random(category))
}
