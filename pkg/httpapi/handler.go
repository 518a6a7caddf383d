package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/unowned-ai/moodlog/pkg/logger"
	"github.com/unowned-ai/moodlog/pkg/refresh"
)

// Handler serves the REST API for a single configured user.
type Handler struct {
	db        *sql.DB
	user      string
	location  *time.Location
	refresher *refresh.Refresher
	log       *logger.Logger
}

type Options struct {
	DB       *sql.DB
	User     string
	Location *time.Location
	// Refresher backs /api/views/latest. Optional.
	Refresher      *refresh.Refresher
	AllowedOrigins []string
	Log            *logger.Logger
}

func NewHandler(opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		db:        opts.DB,
		user:      opts.User,
		location:  loc,
		refresher: opts.Refresher,
		log:       log,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

var errInvalidID = errors.New("id must be a UUID")

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
