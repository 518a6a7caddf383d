package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unowned-ai/moodlog/pkg/records"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

var errInternal = errors.New("internal error")

// respondStoreError maps record-store failures to HTTP statuses. Unexpected
// errors are logged and hidden from the client.
func (h *Handler) respondStoreError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, records.ErrInvalidMoodInput),
		errors.Is(err, records.ErrInvalidInsightInput),
		errors.Is(err, records.ErrInvalidEntryInput),
		errors.Is(err, records.ErrInvalidBreathingInput),
		errors.Is(err, wellness.ErrInvalidDate):
		RespondError(c, http.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, records.ErrMoodNotFound),
		errors.Is(err, records.ErrInsightNotFound),
		errors.Is(err, records.ErrEntryNotFound),
		errors.Is(err, records.ErrBreathingSessionNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		h.log.Error("Request failed", "op", op, "error", err)
		RespondError(c, http.StatusInternalServerError, "internal_error", errInternal)
	}
}
