package service

import "errors"

var (
	// ErrInvalidRiderID is returned when rider ID is empty.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidRideID is returned when ride ID is empty.
	ErrInvalidRideID = errors.New("invalid ride id")

	// ErrInvalidDriverID is returned when driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrRiderAlreadyActive is returned when the rider already has a
	// BOOKED or IN_PROGRESS ride.
	ErrRiderAlreadyActive = errors.New("rider already has an active ride")

	// ErrNoDriverAvailable is returned when no AVAILABLE driver can
	// be acquired.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrRideAlreadyEnded is returned when trying to end a ride that
	// is already COMPLETED, PAID or CANCELLED.
	ErrRideAlreadyEnded = errors.New("ride already ended")

	// ErrNotRideParticipant is returned when the caller is neither
	// the rider nor the driver of the ride.
	ErrNotRideParticipant = errors.New("not a participant of this ride")

	// ErrRideNotCompleted is returned when trying to pay for a ride
	// that is not in COMPLETED status.
	ErrRideNotCompleted = errors.New("ride is not completed")

	// ErrAlreadyPaid is returned when a payment already exists for
	// the ride.
	ErrAlreadyPaid = errors.New("ride already paid")

	// ErrPaymentGateway is returned when the payment gateway declines
	// or fails. No payment record is persisted in that case.
	ErrPaymentGateway = errors.New("payment gateway failed")

	// ErrReceiptNotFound is returned when a ride has no payment yet.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrRideNotFinished is returned when rating a ride that is not
	// COMPLETED or PAID.
	ErrRideNotFinished = errors.New("ride is not finished")

	// ErrAlreadyRated is returned when the rater has already rated
	// this ride.
	ErrAlreadyRated = errors.New("ride already rated by this rater")

	// ErrInvalidScore is returned when a rating score is outside 1-5.
	ErrInvalidScore = errors.New("score must be between 1 and 5")

	// ErrInvalidPaymentMethod is returned when payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidDriverStatus is returned when a driver status string
	// is not recognized.
	ErrInvalidDriverStatus = errors.New("invalid driver status")

	// ErrCannotSetBusy is returned when the administrative override
	// tries to mark a driver BUSY. Only the dispatch path may do that.
	ErrCannotSetBusy = errors.New("driver status BUSY is owned by dispatch")

	// ErrInvalidRiderName is returned when a rider name is empty.
	ErrInvalidRiderName = errors.New("invalid rider name")

	// ErrInvalidRiderEmail is returned when a rider email is empty.
	ErrInvalidRiderEmail = errors.New("invalid rider email")

	// ErrEmailTaken is returned when a rider email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)
