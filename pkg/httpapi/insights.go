package httpapi

import (
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

type createInsightRequest struct {
	WeekStart string `json:"week_start"`
	Summary   string `json:"summary"`
}

// POST /api/insights
// body: { "week_start": "2024-01-01", "summary": "..." }
func (h *Handler) CreateInsight(c *gin.Context) {
	var req createInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	// A blank week start is left zero so the ledger reports it as missing.
	var weekStart civil.Date
	if strings.TrimSpace(req.WeekStart) != "" {
		d, err := wellness.ParseDate(req.WeekStart)
		if err != nil {
			h.respondStoreError(c, "create_insight", err)
			return
		}
		weekStart = d
	}

	insight, err := records.CreateInsight(c.Request.Context(), h.db, h.user, weekStart, req.Summary)
	if err != nil {
		h.respondStoreError(c, "create_insight", err)
		return
	}
	RespondCreated(c, insight)
}

// GET /api/insights
func (h *Handler) ListInsights(c *gin.Context) {
	insights, err := records.ListInsights(c.Request.Context(), h.db, h.user)
	if err != nil {
		h.respondStoreError(c, "list_insights", err)
		return
	}
	RespondOK(c, insights)
}

// DELETE /api/insights/:id
func (h *Handler) DeleteInsight(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := records.DeleteInsight(c.Request.Context(), h.db, h.user, id); err != nil {
		h.respondStoreError(c, "delete_insight", err)
		return
	}
	c.Status(http.StatusNoContent)
}
