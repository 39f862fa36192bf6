package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a star rating plus optional text for one event. Reviews are
// append-only: there is no edit or delete, and a user may review the same
// event more than once.
//
// UserName doubles as the reviewer's identity. It is conventionally the same
// opaque string the client uses for likes, but it is user-editable and not
// validated against the like identity.
type Review struct {
	ID        uuid.UUID `json:"id"`
	EventID   string    `json:"eventId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateReviewRequest is the POST /api/reviews body.
type CreateReviewRequest struct {
	EventID  string `json:"eventId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Review   string `json:"review"`
	UserName string `json:"userName" binding:"required"`
}
