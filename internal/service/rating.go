package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/events"
	"cabride/internal/repository"
)

// RatingService attaches at most one rating per (ride, rater) pair.
type RatingService struct {
	ratingRepo repository.RatingRepository
	rideRepo   repository.RideRepository
	publisher  *events.Publisher
	logger     *zap.Logger
}

// NewRatingService creates a new RatingService. publisher may be nil.
func NewRatingService(
	ratingRepo repository.RatingRepository,
	rideRepo repository.RideRepository,
	publisher *events.Publisher,
	logger *zap.Logger,
) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		rideRepo:   rideRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// SubmitRatingRequest contains the parameters for submitting a rating.
type SubmitRatingRequest struct {
	RideID   string
	RaterID  string
	Score    int
	Comments string
}

// SubmitRating records feedback for a finished ride. The rated party
// is derived from the ride: a rider rates the driver and vice versa.
// The unique (ride, rater) constraint closes the concurrent
// double-submission race; the loser sees ErrAlreadyRated.
func (s *RatingService) SubmitRating(ctx context.Context, req SubmitRatingRequest) (*domain.Rating, error) {
	if req.RideID == "" {
		return nil, ErrInvalidRideID
	}
	if req.RaterID == "" {
		return nil, ErrInvalidRiderID
	}
	if req.Score < domain.MinRatingScore || req.Score > domain.MaxRatingScore {
		return nil, ErrInvalidScore
	}

	ride, err := s.rideRepo.GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	var ratedID string
	switch req.RaterID {
	case ride.RiderID:
		ratedID = ride.DriverID
	case ride.DriverID:
		ratedID = ride.RiderID
	default:
		s.logger.Warn("rating rejected: rater is not a ride participant",
			zap.String("ride_id", req.RideID),
			zap.String("rater_id", req.RaterID))
		return nil, ErrNotRideParticipant
	}

	if ride.Status != domain.RideStatusCompleted && ride.Status != domain.RideStatusPaid {
		return nil, ErrRideNotFinished
	}

	rating := &domain.Rating{
		ID:        uuid.New().String(),
		RideID:    ride.ID,
		RaterID:   req.RaterID,
		RatedID:   ratedID,
		Score:     req.Score,
		Comments:  req.Comments,
		CreatedAt: time.Now(),
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	s.logger.Info("rating submitted",
		zap.String("ride_id", rating.RideID),
		zap.String("rater_id", rating.RaterID),
		zap.Int("score", rating.Score))

	s.publisher.RatingSubmitted(ctx, rating)

	return rating, nil
}

// RatingsFor returns all ratings received by an entity (rider or driver).
func (s *RatingService) RatingsFor(ctx context.Context, entityID string) ([]*domain.Rating, error) {
	return s.ratingRepo.GetByRatedID(ctx, entityID)
}

// RatingsBy returns all ratings given by an entity.
func (s *RatingService) RatingsBy(ctx context.Context, raterID string) ([]*domain.Rating, error) {
	return s.ratingRepo.GetByRaterID(ctx, raterID)
}
