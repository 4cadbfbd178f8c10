package event

import "errors"

var (
	ErrReviewNotFound = errors.New("event review not found")
	ErrAlreadyReviewed = errors.New("event already reviewed by this user")
)
