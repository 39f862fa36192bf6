package models

import "errors"

// Domain specific errors shared across handlers and services.
var (
	ErrNotFound   = errors.New("requested item not found")
	ErrConflict   = errors.New("item already exists or conflict")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")

	ErrUserIDRequired   = errors.New("missing required field: userId")
	ErrEventIDRequired  = errors.New("missing required field: eventId")
	ErrRatingOutOfRange = errors.New("rating must be an integer between 1 and 5")
)
