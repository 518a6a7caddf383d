package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/records"
)

type entryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// POST /api/entries
func (h *Handler) CreateEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	entry, err := records.CreateEntry(c.Request.Context(), h.db, h.user, req.Title, req.Content)
	if err != nil {
		h.respondStoreError(c, "create_entry", err)
		return
	}
	RespondCreated(c, entry)
}

// GET /api/entries?q=...&deleted=true
func (h *Handler) ListEntries(c *gin.Context) {
	var (
		entries []records.Entry
		err     error
	)
	if q := c.Query("q"); q != "" {
		entries, err = records.SearchEntries(c.Request.Context(), h.db, h.user, q)
	} else {
		entries, err = records.ListEntries(c.Request.Context(), h.db, h.user, c.Query("deleted") == "true")
	}
	if err != nil {
		h.respondStoreError(c, "list_entries", err)
		return
	}
	RespondOK(c, entries)
}

// GET /api/entries/:id
func (h *Handler) GetEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := records.GetEntry(c.Request.Context(), h.db, h.user, id)
	if err != nil {
		h.respondStoreError(c, "get_entry", err)
		return
	}
	RespondOK(c, entry)
}

// PUT /api/entries/:id
func (h *Handler) UpdateEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	entry, err := records.UpdateEntry(c.Request.Context(), h.db, h.user, id, req.Title, req.Content)
	if err != nil {
		h.respondStoreError(c, "update_entry", err)
		return
	}
	RespondOK(c, entry)
}

// DELETE /api/entries/:id
func (h *Handler) DeleteEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := records.DeleteEntry(c.Request.Context(), h.db, h.user, id); err != nil {
		h.respondStoreError(c, "delete_entry", err)
		return
	}
	c.Status(http.StatusNoContent)
}
