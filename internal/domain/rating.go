package domain

import "time"

const (
	// MinRatingScore and MaxRatingScore bound the accepted score range.
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating represents feedback left by one ride participant about the
// other. At most one rating exists per (RideID, RaterID) pair and it
// is immutable once created.
type Rating struct {
	ID        string
	RideID    string
	RaterID   string
	RatedID   string
	Score     int
	Comments  string
	CreatedAt time.Time
}
