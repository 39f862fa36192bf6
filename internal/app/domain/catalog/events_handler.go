package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// EventsHandlers exposes the catalog as /api/events.
type EventsHandlers struct {
	repo   Repository
	logger *zap.Logger
}

func NewEventsHandlers(repo Repository, logger *zap.Logger) *EventsHandlers {
	return &EventsHandlers{
		repo:   repo,
		logger: logger,
	}
}

// GetEvents handles GET /api/events?country=.
func (h *EventsHandlers) GetEvents(c *gin.Context) {
	country := c.Query("country")

	events, err := h.repo.FindAll(c.Request.Context(), country)
	if err != nil {
		h.logger.Error("failed to list events", zap.String("country", country), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// GetEvent handles GET /api/events/:id.
func (h *EventsHandlers) GetEvent(c *gin.Context) {
	id := c.Param("id")

	event, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		h.logger.Error("failed to get event", zap.String("event_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}
