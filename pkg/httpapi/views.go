package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/refresh"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

var errNoViews = errors.New("no views computed yet")

// GET /api/views?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) GetViews(c *gin.Context) {
	window, err := wellness.ParseWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_window", err)
		return
	}

	snap, err := records.LoadSnapshot(c.Request.Context(), h.db, h.user)
	if err != nil {
		h.respondStoreError(c, "load_snapshot", err)
		return
	}

	q := wellness.Query{Window: window, Location: h.location}
	RespondOK(c, refresh.Result{
		Views:      snap.Views(q),
		Window:     window.String(),
		TakenAt:    snap.TakenAt,
		ComputedAt: time.Now().UTC(),
	})
}

// GET /api/views/latest
func (h *Handler) GetLatestViews(c *gin.Context) {
	if h.refresher == nil {
		RespondError(c, http.StatusServiceUnavailable, "not_ready", errNoViews)
		return
	}
	res, ok := h.refresher.Latest()
	if !ok {
		RespondError(c, http.StatusServiceUnavailable, "not_ready", errNoViews)
		return
	}
	RespondOK(c, res)
}
