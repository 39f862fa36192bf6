package reviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// ReviewsHandlers exposes the reviews store as the /api/reviews JSON
// endpoints.
type ReviewsHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewReviewsHandlers(service Service, logger *zap.Logger) *ReviewsHandlers {
	return &ReviewsHandlers{
		service: service,
		logger:  logger,
	}
}

// GetReviews handles GET /api/reviews. With eventId it lists that event's
// reviews newest-first; with userName, that reviewer's history; with neither,
// every review.
func (h *ReviewsHandlers) GetReviews(c *gin.Context) {
	eventID := c.Query("eventId")
	userName := c.Query("userName")

	var (
		result []models.Review
		err    error
	)
	switch {
	case eventID != "":
		result, err = h.service.GetReviewsByEvent(c.Request.Context(), eventID)
	case userName != "":
		result, err = h.service.GetReviewsByUserName(c.Request.Context(), userName)
	default:
		result, err = h.service.GetAllReviews(c.Request.Context())
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	if result == nil {
		result = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": result})
}

// CreateReview handles POST /api/reviews.
func (h *ReviewsHandlers) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: eventId, rating, userName",
		})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
}

func (h *ReviewsHandlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEventIDRequired),
		errors.Is(err, models.ErrRatingOutOfRange),
		errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		h.logger.Error("reviews handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}
