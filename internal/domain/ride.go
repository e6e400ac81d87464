package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusBooked     RideStatus = "BOOKED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusPaid       RideStatus = "PAID"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// rideTransitions defines the state machine for ride status transitions.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusBooked:     {RideStatusInProgress, RideStatusCompleted, RideStatusCancelled},
	RideStatusInProgress: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted:  {RideStatusPaid},
	RideStatusPaid:       {},
	RideStatusCancelled:  {},
}

// IsValid returns true if the status is a recognized ride status.
func (s RideStatus) IsValid() bool {
	_, ok := rideTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition to target is allowed.
func (s RideStatus) CanTransitionTo(target RideStatus) bool {
	for _, t := range rideTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsActive returns true while the ride holds its driver (BOOKED or
// IN_PROGRESS).
func (s RideStatus) IsActive() bool {
	return s == RideStatusBooked || s == RideStatusInProgress
}

// IsEnded returns true once the ride has left the active phase.
func (s RideStatus) IsEnded() bool {
	return s == RideStatusCompleted || s == RideStatusPaid || s == RideStatusCancelled
}

// Ride represents a booked trip. Fare, source, destination and
// DriverID are fixed at booking and never change afterwards.
type Ride struct {
	ID          string
	RiderID     string
	DriverID    string
	Source      string
	Destination string
	Fare        float64
	Status      RideStatus
	StartTime   time.Time
	EndTime     time.Time // zero until the ride is ended
}
