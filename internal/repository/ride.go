package repository

import (
	"context"
	"time"

	"cabride/internal/domain"
)

// RideRepository defines the persistence operations for the ride
// ledger. Rides are never deleted; status moves only through the
// guarded transition methods below.
type RideRepository interface {
	// Create persists a new ride in BOOKED status. The store enforces
	// at most one active ride per rider: a concurrent second booking
	// returns ErrDuplicate even when the pre-check raced.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetByRiderID retrieves all rides booked by a rider, newest first.
	GetByRiderID(ctx context.Context, riderID string) ([]*domain.Ride, error)

	// GetByDriverID retrieves all rides assigned to a driver, newest first.
	GetByDriverID(ctx context.Context, driverID string) ([]*domain.Ride, error)

	// GetActiveByRiderID retrieves the rider's BOOKED or IN_PROGRESS
	// ride. Returns nil if the rider has no active ride.
	GetActiveByRiderID(ctx context.Context, riderID string) (*domain.Ride, error)

	// GetActiveByDriverID retrieves the driver's BOOKED or
	// IN_PROGRESS ride. Returns nil if the driver has none.
	GetActiveByDriverID(ctx context.Context, driverID string) (*domain.Ride, error)

	// Complete transitions an active ride to COMPLETED and records
	// the end time. The transition is conditional on the ride still
	// being active: ErrNotFound is returned when no active row
	// matched, so concurrent enders cannot both succeed.
	Complete(ctx context.Context, id string, endTime time.Time) error

	// MarkPaid transitions a COMPLETED ride to PAID. Conditional on
	// the current status the same way Complete is.
	MarkPaid(ctx context.Context, id string) error

	// Reactivate reverts a COMPLETED ride to the given active status
	// and clears the end time. It is the compensating action for a
	// completion whose driver release failed; conditional on the ride
	// still being COMPLETED.
	Reactivate(ctx context.Context, id string, status domain.RideStatus) error
}
