package likes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

// LikesHandlers exposes the likes store as the /api/likes JSON endpoints the
// static front end talks to.
type LikesHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewLikesHandlers(service Service, logger *zap.Logger) *LikesHandlers {
	return &LikesHandlers{
		service: service,
		logger:  logger,
	}
}

// GetLikes handles GET /api/likes. With userId and eventId it answers a
// liked-check; with only userId it lists that user's likes newest-first;
// with neither it lists every like (admin view).
func (h *LikesHandlers) GetLikes(c *gin.Context) {
	userID := c.Query("userId")
	eventID := c.Query("eventId")

	switch {
	case userID != "" && eventID != "":
		liked, err := h.service.IsLiked(c.Request.Context(), userID, eventID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked})

	case userID != "":
		userLikes, err := h.service.GetLikesByUser(c.Request.Context(), userID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "likes": emptyIfNil(userLikes)})

	default:
		allLikes, err := h.service.GetAllLikes(c.Request.Context())
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "likes": emptyIfNil(allLikes)})
	}
}

// CreateLike handles POST /api/likes. Repeat likes are a no-op returning the
// existing state.
func (h *LikesHandlers) CreateLike(c *gin.Context) {
	var req models.CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: userId, eventId",
		})
		return
	}

	alreadyLiked, err := h.service.IsLiked(c.Request.Context(), req.UserID, req.EventID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	like, err := h.service.LikeEvent(c.Request.Context(), req.UserID, req.EventID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if alreadyLiked {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Event already liked",
			"liked":   true,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"like":    like,
		"liked":   true,
	})
}

// DeleteLike handles DELETE /api/likes?userId=&eventId=.
func (h *LikesHandlers) DeleteLike(c *gin.Context) {
	userID := c.Query("userId")
	eventID := c.Query("eventId")

	if userID == "" || eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields: userId, eventId",
		})
		return
	}

	if err := h.service.UnlikeEvent(c.Request.Context(), userID, eventID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Like not found"})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Like removed",
		"liked":   false,
	})
}

func (h *LikesHandlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUserIDRequired), errors.Is(err, models.ErrEventIDRequired):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	default:
		h.logger.Error("likes handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

func emptyIfNil(likes []models.Like) []models.Like {
	if likes == nil {
		return []models.Like{}
	}
	return likes
}
