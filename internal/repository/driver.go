package repository

import (
	"context"

	"cabride/internal/domain"
)

// DriverRepository defines the persistence operations for drivers.
type DriverRepository interface {
	// Create adds a new driver.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByID retrieves a driver by ID.
	GetByID(ctx context.Context, id string) (*domain.Driver, error)

	// GetAll retrieves all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// AcquireAvailable atomically claims one AVAILABLE driver, flips
	// it to BUSY and returns it. The claim must be a single
	// conditional update: two concurrent callers can never acquire
	// the same driver. Returns ErrNotFound when the pool has no
	// AVAILABLE driver.
	AcquireAvailable(ctx context.Context) (*domain.Driver, error)

	// Release sets a driver back to AVAILABLE. Idempotent if the
	// driver is already AVAILABLE; returns ErrNotFound for an
	// unknown id.
	Release(ctx context.Context, id string) error

	// UpdateStatus is the administrative status override. The
	// dispatch path never uses it.
	UpdateStatus(ctx context.Context, id string, status domain.DriverStatus) error
}
