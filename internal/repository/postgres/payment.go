package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cabride/internal/domain"
	"cabride/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
// The payments table carries a UNIQUE constraint on ride_id, which is
// what actually enforces at-most-one-payment under concurrency.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, ride_id, rider_id, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.ID,
		payment.RideID,
		payment.RiderID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a payment by ID. Only used to roll back a payment
// whose ride status update failed.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
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

// GetByRideID retrieves the payment attached to a ride.
func (r *PaymentRepository) GetByRideID(ctx context.Context, rideID string) (*domain.Payment, error) {
	query := `
		SELECT id, ride_id, rider_id, amount, method, status, created_at
		FROM payments WHERE ride_id = $1
	`

	var payment domain.Payment
	err := r.q.QueryRowContext(ctx, query, rideID).Scan(
		&payment.ID,
		&payment.RideID,
		&payment.RiderID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.Timestamp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}
