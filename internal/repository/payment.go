package repository

import (
	"context"

	"cabride/internal/domain"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// Create persists a new payment. The store enforces at most one
	// payment per ride: a second insert for the same ride returns
	// ErrDuplicate.
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByRideID retrieves the payment attached to a ride. Returns
	// ErrNotFound when the ride has no payment yet.
	GetByRideID(ctx context.Context, rideID string) (*domain.Payment, error)

	// Delete removes a payment by ID. It is the compensating action
	// for a payment whose ride status update failed; payments are
	// otherwise immutable.
	Delete(ctx context.Context, id string) error
}
