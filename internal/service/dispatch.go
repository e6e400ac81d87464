package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/events"
	"cabride/internal/fare"
	"cabride/internal/redis"
	"cabride/internal/repository"
)

// bookingLockTTL bounds how long a rider's booking lock can outlive a
// crashed instance.
const bookingLockTTL = 10 * time.Second

// DispatchService orchestrates the ride lifecycle: booking prices the
// route, claims a driver and writes the ride as one unit; ending the
// ride completes it and releases the driver.
type DispatchService struct {
	driverRepo repository.DriverRepository
	rideRepo   repository.RideRepository
	riderRepo  repository.RiderRepository
	calc       *fare.Calculator
	lockStore  redis.LockStoreInterface
	rideCache  redis.RideCacheInterface
	publisher  *events.Publisher
	logger     *zap.Logger
}

// NewDispatchService creates a new DispatchService. lockStore,
// rideCache and publisher may be nil; dispatch then runs without the
// cross-instance fences, caching and event stream.
func NewDispatchService(
	driverRepo repository.DriverRepository,
	rideRepo repository.RideRepository,
	riderRepo repository.RiderRepository,
	calc *fare.Calculator,
	lockStore redis.LockStoreInterface,
	rideCache redis.RideCacheInterface,
	publisher *events.Publisher,
	logger *zap.Logger,
) *DispatchService {
	return &DispatchService{
		driverRepo: driverRepo,
		rideRepo:   rideRepo,
		riderRepo:  riderRepo,
		calc:       calc,
		lockStore:  lockStore,
		rideCache:  rideCache,
		publisher:  publisher,
		logger:     logger,
	}
}

// BookRideRequest contains the parameters for booking a ride.
type BookRideRequest struct {
	RiderID     string
	Source      string
	Destination string
}

// BookRide books a ride for the rider: validates the route, computes
// the fare, claims an AVAILABLE driver and writes the ride in BOOKED
// status. The driver claim and the ride write form one unit: if the
// write fails the claimed driver is released again, so no BUSY driver
// is ever left without an active ride.
func (s *DispatchService) BookRide(ctx context.Context, req BookRideRequest) (*domain.Ride, error) {
	if req.RiderID == "" {
		return nil, ErrInvalidRiderID
	}

	quote, err := s.calc.Estimate(req.Source, req.Destination)
	if err != nil {
		return nil, err
	}

	if _, err := s.riderRepo.GetByID(ctx, req.RiderID); err != nil {
		return nil, err
	}

	s.logger.Info("booking request received",
		zap.String("rider_id", req.RiderID),
		zap.String("source", quote.Source),
		zap.String("destination", quote.Destination))

	// Fence concurrent bookings by the same rider across instances
	// while the active-ride check runs.
	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireRiderLock(ctx, req.RiderID, bookingLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrRiderAlreadyActive
		}
		defer func() { _ = s.lockStore.ReleaseRiderLock(ctx, req.RiderID) }()
	}

	active, err := s.rideRepo.GetActiveByRiderID(ctx, req.RiderID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		s.logger.Warn("booking rejected: rider has an ongoing ride",
			zap.String("rider_id", req.RiderID),
			zap.String("active_ride_id", active.ID))
		return nil, ErrRiderAlreadyActive
	}

	driver, err := s.driverRepo.AcquireAvailable(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("booking rejected: no drivers available",
				zap.String("rider_id", req.RiderID))
			return nil, ErrNoDriverAvailable
		}
		return nil, err
	}

	ride := &domain.Ride{
		ID:          uuid.New().String(),
		RiderID:     req.RiderID,
		DriverID:    driver.ID,
		Source:      quote.Source,
		Destination: quote.Destination,
		Fare:        quote.Amount,
		Status:      domain.RideStatusBooked,
		StartTime:   time.Now(),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		// Compensate the claim so the driver is not leaked as BUSY.
		if relErr := s.driverRepo.Release(ctx, driver.ID); relErr != nil {
			s.logger.Error("failed to release driver after ride creation failure",
				zap.String("driver_id", driver.ID), zap.Error(relErr))
		}
		if errors.Is(err, repository.ErrDuplicate) {
			// The rider's active-ride uniqueness fired at the storage
			// layer: a concurrent booking won the race.
			return nil, ErrRiderAlreadyActive
		}
		return nil, err
	}

	s.logger.Info("ride booked",
		zap.String("ride_id", ride.ID),
		zap.String("driver_id", driver.ID),
		zap.Float64("distance_km", quote.DistanceKm),
		zap.Float64("fare", ride.Fare))

	s.publisher.RideBooked(ctx, ride)

	return ride, nil
}

// EndRide transitions an active ride to COMPLETED, records the end
// time and releases the assigned driver back to AVAILABLE. Payment is
// a separate explicit step.
func (s *DispatchService) EndRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.Status.IsEnded() {
		return nil, ErrRideAlreadyEnded
	}
	prevStatus := ride.Status

	endTime := time.Now()
	if err := s.rideRepo.Complete(ctx, rideID, endTime); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost the race against a concurrent ender.
			return nil, ErrRideAlreadyEnded
		}
		return nil, err
	}

	if err := s.driverRepo.Release(ctx, ride.DriverID); err != nil {
		// Revert the completion so the ride stays active and the call
		// can be retried. Otherwise the driver would be stuck BUSY
		// behind an already-ended ride with no path to release it.
		if reErr := s.rideRepo.Reactivate(ctx, rideID, prevStatus); reErr != nil {
			s.logger.Error("failed to reactivate ride after driver release failure",
				zap.String("ride_id", rideID), zap.Error(reErr))
		}
		s.logger.Error("failed to release driver after ride completion",
			zap.String("ride_id", rideID),
			zap.String("driver_id", ride.DriverID),
			zap.Error(err))
		return nil, err
	}

	ride.Status = domain.RideStatusCompleted
	ride.EndTime = endTime

	if s.rideCache != nil {
		_ = s.rideCache.InvalidateRide(ctx, rideID)
	}

	s.logger.Info("ride completed",
		zap.String("ride_id", ride.ID),
		zap.String("driver_id", ride.DriverID))

	s.publisher.RideCompleted(ctx, ride)

	return ride, nil
}

// GetRide retrieves a ride by ID, serving from cache when possible.
func (s *DispatchService) GetRide(ctx context.Context, rideID string) (*domain.Ride, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if s.rideCache != nil {
		cached, err := s.rideCache.GetRide(ctx, rideID)
		if err == nil && cached != nil {
			return cachedToRide(cached), nil
		}
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if s.rideCache != nil {
		_ = s.rideCache.SetRide(ctx, rideToCached(ride))
	}

	return ride, nil
}

// RideHistory returns all rides booked by the rider, newest first.
func (s *DispatchService) RideHistory(ctx context.Context, riderID string) ([]*domain.Ride, error) {
	if riderID == "" {
		return nil, ErrInvalidRiderID
	}

	if _, err := s.riderRepo.GetByID(ctx, riderID); err != nil {
		return nil, err
	}

	return s.rideRepo.GetByRiderID(ctx, riderID)
}

// RideHistoryByEmail resolves a rider by email and returns their rides.
func (s *DispatchService) RideHistoryByEmail(ctx context.Context, email string) ([]*domain.Ride, error) {
	rider, err := s.riderRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.rideRepo.GetByRiderID(ctx, rider.ID)
}

// DriverRideHistory returns all rides assigned to the driver.
func (s *DispatchService) DriverRideHistory(ctx context.Context, driverID string) ([]*domain.Ride, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	if _, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	return s.rideRepo.GetByDriverID(ctx, driverID)
}

// ActiveRideForDriver returns the driver's current BOOKED or
// IN_PROGRESS ride, or nil if the driver has none.
func (s *DispatchService) ActiveRideForDriver(ctx context.Context, driverID string) (*domain.Ride, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	if _, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	return s.rideRepo.GetActiveByDriverID(ctx, driverID)
}

// EstimateFare prices a route without booking anything.
func (s *DispatchService) EstimateFare(source, destination string) (*fare.Quote, error) {
	return s.calc.Estimate(source, destination)
}

// Locations returns the closed set of bookable locations.
func (s *DispatchService) Locations() []string {
	return s.calc.Locations()
}

func rideToCached(ride *domain.Ride) *redis.CachedRide {
	return &redis.CachedRide{
		ID:          ride.ID,
		RiderID:     ride.RiderID,
		DriverID:    ride.DriverID,
		Source:      ride.Source,
		Destination: ride.Destination,
		Fare:        ride.Fare,
		Status:      string(ride.Status),
		StartTime:   ride.StartTime,
		EndTime:     ride.EndTime,
	}
}

func cachedToRide(cached *redis.CachedRide) *domain.Ride {
	return &domain.Ride{
		ID:          cached.ID,
		RiderID:     cached.RiderID,
		DriverID:    cached.DriverID,
		Source:      cached.Source,
		Destination: cached.Destination,
		Fare:        cached.Fare,
		Status:      domain.RideStatus(cached.Status),
		StartTime:   cached.StartTime,
		EndTime:     cached.EndTime,
	}
}
