package repository

import (
	"context"

	"cabride/internal/domain"
)

// RatingRepository defines the persistence operations for ratings.
type RatingRepository interface {
	// Create persists a new rating. The store enforces at most one
	// rating per (ride, rater) pair: a duplicate insert returns
	// ErrDuplicate.
	Create(ctx context.Context, rating *domain.Rating) error

	// GetByRatedID retrieves all ratings received by an entity.
	GetByRatedID(ctx context.Context, ratedID string) ([]*domain.Rating, error)

	// GetByRaterID retrieves all ratings given by an entity.
	GetByRaterID(ctx context.Context, raterID string) ([]*domain.Rating, error)
}
