package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cabride/internal/domain"
	"cabride/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

const rideColumns = `id, rider_id, driver_id, source, destination, fare, status, start_time, end_time`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var endTime sql.NullTime

	err := row.Scan(
		&ride.ID,
		&ride.RiderID,
		&ride.DriverID,
		&ride.Source,
		&ride.Destination,
		&ride.Fare,
		&ride.Status,
		&ride.StartTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		ride.EndTime = endTime.Time
	}
	return &ride, nil
}

// Create persists a new ride. The rides table carries a partial
// unique index on rider_id over the active statuses, so a racing
// second booking by the same rider fails here even when both callers
// passed the active-ride pre-check.
func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (id, rider_id, driver_id, source, destination, fare, status, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var endTime sql.NullTime
	if !ride.EndTime.IsZero() {
		endTime = sql.NullTime{Time: ride.EndTime, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.RiderID,
		ride.DriverID,
		ride.Source,
		ride.Destination,
		ride.Fare,
		ride.Status,
		ride.StartTime,
		endTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ride, nil
}

// GetByRiderID retrieves all rides booked by a rider, newest first.
func (r *RideRepository) GetByRiderID(ctx context.Context, riderID string) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE rider_id = $1 ORDER BY start_time DESC`
	return r.queryRides(ctx, query, riderID)
}

// GetByDriverID retrieves all rides assigned to a driver, newest first.
func (r *RideRepository) GetByDriverID(ctx context.Context, driverID string) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY start_time DESC`
	return r.queryRides(ctx, query, driverID)
}

// GetActiveByRiderID retrieves the rider's BOOKED or IN_PROGRESS ride.
func (r *RideRepository) GetActiveByRiderID(ctx context.Context, riderID string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE rider_id = $1 AND status IN ($2, $3) LIMIT 1`
	return r.activeRide(ctx, query, riderID)
}

// GetActiveByDriverID retrieves the driver's BOOKED or IN_PROGRESS ride.
func (r *RideRepository) GetActiveByDriverID(ctx context.Context, driverID string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 AND status IN ($2, $3) LIMIT 1`
	return r.activeRide(ctx, query, driverID)
}

func (r *RideRepository) activeRide(ctx context.Context, query, id string) (*domain.Ride, error) {
	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id, domain.RideStatusBooked, domain.RideStatusInProgress))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ride, nil
}

// Complete transitions an active ride to COMPLETED. The WHERE clause
// guards the transition: a ride that has already ended matches no row.
func (r *RideRepository) Complete(ctx context.Context, id string, endTime time.Time) error {
	query := `
		UPDATE rides SET status = $1, end_time = $2
		WHERE id = $3 AND status IN ($4, $5)
	`

	result, err := r.q.ExecContext(ctx, query,
		domain.RideStatusCompleted, endTime, id,
		domain.RideStatusBooked, domain.RideStatusInProgress)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// MarkPaid transitions a COMPLETED ride to PAID.
func (r *RideRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE rides SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, domain.RideStatusPaid, id, domain.RideStatusCompleted)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Reactivate reverts a COMPLETED ride back to the given active status
// and clears the end time. Compensates a completion whose driver
// release failed, so the caller can retry ending the ride.
func (r *RideRepository) Reactivate(ctx context.Context, id string, status domain.RideStatus) error {
	query := `UPDATE rides SET status = $1, end_time = NULL WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, status, id, domain.RideStatusCompleted)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RideRepository) queryRides(ctx context.Context, query string, args ...any) ([]*domain.Ride, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}
