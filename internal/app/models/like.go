package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks one event as a favourite of one user. At most one row exists per
// (UserID, EventID); creation is idempotent.
type Like struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	EventID   string    `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateLikeRequest is the POST /api/likes body.
type CreateLikeRequest struct {
	UserID  string `json:"userId" binding:"required"`
	EventID string `json:"eventId" binding:"required"`
}
