package recommendations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// RecommendationsHandlers exposes GET /api/recommendations.
type RecommendationsHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewRecommendationsHandlers(service Service, logger *zap.Logger) *RecommendationsHandlers {
	return &RecommendationsHandlers{
		service: service,
		logger:  logger,
	}
}

// GetRecommendations handles GET /api/recommendations?userId=&country=&limit=.
func (h *RecommendationsHandlers) GetRecommendations(c *gin.Context) {
	userID := c.Query("userId")
	country := c.Query("country")

	limit := DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	result, err := h.service.GetRecommendations(c.Request.Context(), userID, country, limit)
	if err != nil {
		if errors.Is(err, models.ErrUserIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Missing required field: userId",
			})
			return
		}
		h.logger.Error("failed to get recommendations",
			zap.String("user_id", userID),
			zap.String("country", country),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"recommendations": result.Recommendations,
			"message":         result.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": result.Recommendations,
		"userPreferences": result.Preferences,
		"totalLikes":      result.TotalLikes,
	})
}
