package postgres

import (
	"context"
	"database/sql"

	"cabride/internal/domain"
	"cabride/internal/repository"
)

// RatingRepository is a PostgreSQL implementation of repository.RatingRepository.
// The ratings table carries a UNIQUE constraint on (ride_id, rater_id).
type RatingRepository struct {
	q Querier
}

// NewRatingRepository creates a new PostgreSQL rating repository.
func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{q: db}
}

// Create persists a new rating.
func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (id, ride_id, rater_id, rated_id, score, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		rating.ID,
		rating.RideID,
		rating.RaterID,
		rating.RatedID,
		rating.Score,
		rating.Comments,
		rating.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByRatedID retrieves all ratings received by an entity, newest first.
func (r *RatingRepository) GetByRatedID(ctx context.Context, ratedID string) ([]*domain.Rating, error) {
	query := `
		SELECT id, ride_id, rater_id, rated_id, score, COALESCE(comments, ''), created_at
		FROM ratings WHERE rated_id = $1 ORDER BY created_at DESC
	`
	return r.queryRatings(ctx, query, ratedID)
}

// GetByRaterID retrieves all ratings given by an entity, newest first.
func (r *RatingRepository) GetByRaterID(ctx context.Context, raterID string) ([]*domain.Rating, error) {
	query := `
		SELECT id, ride_id, rater_id, rated_id, score, COALESCE(comments, ''), created_at
		FROM ratings WHERE rater_id = $1 ORDER BY created_at DESC
	`
	return r.queryRatings(ctx, query, raterID)
}

func (r *RatingRepository) queryRatings(ctx context.Context, query string, args ...any) ([]*domain.Rating, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*domain.Rating
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.RideID,
			&rating.RaterID,
			&rating.RatedID,
			&rating.Score,
			&rating.Comments,
			&rating.CreatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, &rating)
	}
	return ratings, rows.Err()
}
