package domain

import "time"

// PaymentStatus represents the outcome of a payment.
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// PaymentMethod represents how a ride was paid for.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
	PaymentMethodUPI    PaymentMethod = "UPI"
)

// Payment represents the single payment attached to a ride. Immutable
// once created; at most one exists per ride.
type Payment struct {
	ID        string
	RideID    string
	RiderID   string
	Amount    float64
	Method    PaymentMethod
	Status    PaymentStatus
	Timestamp time.Time
}
