package tests

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/fare"
	"cabride/internal/repository"
	"cabride/internal/service"
)

func newDispatch(driverRepo *MockDriverRepository, rideRepo *MockRideRepository, riderRepo *MockRiderRepository) *service.DispatchService {
	calc := fare.NewCalculator(fare.NewRouteTable(fare.DefaultRoutes(), fare.DefaultDistanceKm))
	return service.NewDispatchService(driverRepo, rideRepo, riderRepo, calc, nil, nil, nil, zap.NewNop())
}

func addRider(repo *MockRiderRepository, id string) {
	repo.AddRider(&domain.Rider{ID: id, Name: "Rider " + id, Email: id + "@example.com"})
}

func addAvailableDriver(repo *MockDriverRepository, id string) {
	repo.AddDriver(&domain.Driver{ID: id, Name: "Driver " + id, Status: domain.DriverStatusAvailable})
}

// ──────────────────────────────────────────────
// BOOKING
// ──────────────────────────────────────────────

func TestBookRide_HappyPath(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	ride, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ride.Status != domain.RideStatusBooked {
		t.Errorf("expected status %s, got %s", domain.RideStatusBooked, ride.Status)
	}
	if ride.DriverID != "driver-1" {
		t.Errorf("expected driver-1 assigned, got %s", ride.DriverID)
	}
	// Adyar-Guindy is 7 km at the base rate of 10/km.
	if ride.Fare != 70.00 {
		t.Errorf("expected fare 70.00, got %.2f", ride.Fare)
	}
	if ride.StartTime.IsZero() {
		t.Error("expected start time to be set")
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusBusy {
		t.Error("expected assigned driver to be BUSY")
	}
}

func TestBookRide_CaseInsensitiveLocations(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	ride, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "  adyar ",
		Destination: "GUINDY",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Stored spellings are canonical regardless of input casing.
	if ride.Source != "Adyar" || ride.Destination != "Guindy" {
		t.Errorf("expected canonical spellings, got %s -> %s", ride.Source, ride.Destination)
	}
}

func TestBookRide_UnknownLocation(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Atlantis",
		Destination: "Guindy",
	})
	if !errors.Is(err, fare.ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}

	// Nothing was claimed or written.
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should remain AVAILABLE")
	}
	if rideRepo.CountRides() != 0 {
		t.Error("no ride should be created")
	}
}

func TestBookRide_RiderAlreadyActive(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")
	addAvailableDriver(driverRepo, "driver-2")

	rideRepo.AddRide(&domain.Ride{
		ID:      "ride-1",
		RiderID: "rider-1",
		Status:  domain.RideStatusBooked,
	})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if !errors.Is(err, service.ErrRiderAlreadyActive) {
		t.Fatalf("expected ErrRiderAlreadyActive, got %v", err)
	}

	// The pool was not touched.
	if driverRepo.CountByStatus(domain.DriverStatusBusy) != 0 {
		t.Error("no driver should have been claimed")
	}
}

func TestBookRide_NoDriverAvailable(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusOffline})
	driverRepo.AddDriver(&domain.Driver{ID: "driver-2", Status: domain.DriverStatusBusy})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if !errors.Is(err, service.ErrNoDriverAvailable) {
		t.Fatalf("expected ErrNoDriverAvailable, got %v", err)
	}
	if rideRepo.CountRides() != 0 {
		t.Error("no ride should be created")
	}
}

func TestBookRide_UnknownRider(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addAvailableDriver(driverRepo, "driver-1")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "ghost",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if err == nil {
		t.Fatal("expected error for unknown rider")
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should remain AVAILABLE")
	}
}

func TestBookRide_ReleasesDriverWhenCreateFails(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")

	rideRepo.CreateError = errors.New("insert failed")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if err == nil {
		t.Fatal("expected error when ride creation fails")
	}

	// The claimed driver was released again: no BUSY driver without a ride.
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should be released back to AVAILABLE")
	}
}

func TestBookRide_DuplicateActiveInsertMapsToRiderAlreadyActive(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addAvailableDriver(driverRepo, "driver-1")

	// A concurrent booking by the same rider slipped in between the
	// active-ride check and the insert; the partial unique index on
	// active rides rejects the second row.
	rideRepo.CreateError = repository.ErrDuplicate

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID:     "rider-1",
		Source:      "Adyar",
		Destination: "Guindy",
	})
	if !errors.Is(err, service.ErrRiderAlreadyActive) {
		t.Fatalf("expected ErrRiderAlreadyActive, got %v", err)
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should be released back to AVAILABLE")
	}
}

// ──────────────────────────────────────────────
// CONCURRENT BOOKING
// ──────────────────────────────────────────────

func TestBookRide_ConcurrentRidersNeverShareADriver(t *testing.T) {
	t.Parallel()

	const riders = 8
	const drivers = riders - 1

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	for i := 0; i < riders; i++ {
		addRider(riderRepo, fmt.Sprintf("rider-%d", i))
	}
	for i := 0; i < drivers; i++ {
		addAvailableDriver(driverRepo, fmt.Sprintf("driver-%d", i))
	}

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	var wg sync.WaitGroup
	results := make([]error, riders)
	rides := make([]*domain.Ride, riders)
	for i := 0; i < riders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rides[i], results[i] = svc.BookRide(context.Background(), service.BookRideRequest{
				RiderID:     fmt.Sprintf("rider-%d", i),
				Source:      "Adyar",
				Destination: "Guindy",
			})
		}(i)
	}
	wg.Wait()

	// Exactly one rider loses, the rest each hold a distinct driver.
	losses := 0
	assigned := make(map[string]int)
	for i, err := range results {
		if errors.Is(err, service.ErrNoDriverAvailable) {
			losses++
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assigned[rides[i].DriverID]++
	}

	if losses != 1 {
		t.Errorf("expected exactly 1 ErrNoDriverAvailable, got %d", losses)
	}
	for driverID, n := range assigned {
		if n != 1 {
			t.Errorf("driver %s assigned to %d rides", driverID, n)
		}
	}
	if driverRepo.CountByStatus(domain.DriverStatusAvailable) != 0 {
		t.Error("expected the whole pool to be BUSY")
	}
}

func TestBookRide_SameRiderConcurrentlyBooksOnce(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	for i := 0; i < 4; i++ {
		addAvailableDriver(driverRepo, fmt.Sprintf("driver-%d", i))
	}

	lockStore := NewMockLockStore()
	calc := fare.NewCalculator(fare.NewRouteTable(fare.DefaultRoutes(), fare.DefaultDistanceKm))
	svc := service.NewDispatchService(driverRepo, rideRepo, riderRepo, calc, lockStore, nil, nil, zap.NewNop())

	const attempts = 4
	var wg sync.WaitGroup
	var successes, rejections int32
	var mu sync.Mutex
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BookRide(context.Background(), service.BookRideRequest{
				RiderID:     "rider-1",
				Source:      "Adyar",
				Destination: "Guindy",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, service.ErrRiderAlreadyActive):
				rejections++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly 1 successful booking, got %d", successes)
	}
	if rejections != attempts-1 {
		t.Errorf("expected %d rejections, got %d", attempts-1, rejections)
	}
	if driverRepo.CountByStatus(domain.DriverStatusBusy) != 1 {
		t.Errorf("expected 1 BUSY driver, got %d", driverRepo.CountByStatus(domain.DriverStatusBusy))
	}
}

// ──────────────────────────────────────────────
// ENDING A RIDE
// ──────────────────────────────────────────────

func TestEndRide_CompletesAndReleasesDriver(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusBusy})
	rideRepo.AddRide(&domain.Ride{
		ID:        "ride-1",
		RiderID:   "rider-1",
		DriverID:  "driver-1",
		Status:    domain.RideStatusBooked,
		StartTime: time.Now().Add(-20 * time.Minute),
	})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	ride, err := svc.EndRide(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected status %s, got %s", domain.RideStatusCompleted, ride.Status)
	}
	if ride.EndTime.IsZero() {
		t.Error("expected end time to be set")
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should be AVAILABLE again")
	}
}

func TestEndRide_DriverIsRebookableAfterward(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addRider(riderRepo, "rider-2")
	addAvailableDriver(driverRepo, "driver-1")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	first, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID: "rider-1", Source: "Adyar", Destination: "Guindy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.EndRide(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.BookRide(context.Background(), service.BookRideRequest{
		RiderID: "rider-2", Source: "Velachery", Destination: "Guindy",
	})
	if err != nil {
		t.Fatalf("expected the released driver to be claimable, got %v", err)
	}
	if second.DriverID != "driver-1" {
		t.Errorf("expected driver-1 to be reassigned, got %s", second.DriverID)
	}
}

func TestEndRide_ReactivatesRideWhenReleaseFails(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusBusy})
	rideRepo.AddRide(&domain.Ride{
		ID:        "ride-1",
		RiderID:   "rider-1",
		DriverID:  "driver-1",
		Status:    domain.RideStatusInProgress,
		StartTime: time.Now().Add(-20 * time.Minute),
	})

	driverRepo.ReleaseError = errors.New("connection reset")

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.EndRide(context.Background(), "ride-1")
	if err == nil {
		t.Fatal("expected error when driver release fails")
	}
	if errors.Is(err, service.ErrRideAlreadyEnded) {
		t.Fatal("a failed release must surface the release error, not ErrRideAlreadyEnded")
	}

	// The completion was rolled back: the ride is active again with no
	// end time, and the driver is still BUSY and held by it.
	ride := rideRepo.GetRide("ride-1")
	if ride.Status != domain.RideStatusInProgress {
		t.Errorf("expected ride back to %s, got %s", domain.RideStatusInProgress, ride.Status)
	}
	if !ride.EndTime.IsZero() {
		t.Error("expected end time to be cleared")
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusBusy {
		t.Error("driver should still be BUSY")
	}

	// Once the store recovers, the retry ends the ride and frees the driver.
	driverRepo.ReleaseError = nil
	ride, err = svc.EndRide(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if ride.Status != domain.RideStatusCompleted {
		t.Errorf("expected status %s, got %s", domain.RideStatusCompleted, ride.Status)
	}
	if driverRepo.GetDriver("driver-1").Status != domain.DriverStatusAvailable {
		t.Error("driver should be AVAILABLE after the retry")
	}
}

func TestEndRide_AlreadyEnded(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusAvailable})
	rideRepo.AddRide(&domain.Ride{
		ID:       "ride-1",
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   domain.RideStatusCompleted,
	})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	_, err := svc.EndRide(context.Background(), "ride-1")
	if !errors.Is(err, service.ErrRideAlreadyEnded) {
		t.Fatalf("expected ErrRideAlreadyEnded, got %v", err)
	}
}

func TestEndRide_ConcurrentEndersOnlyOneWins(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusBusy})
	rideRepo.AddRide(&domain.Ride{
		ID:       "ride-1",
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   domain.RideStatusInProgress,
	})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	const enders = 4
	var wg sync.WaitGroup
	var successes int32
	var mu sync.Mutex
	for i := 0; i < enders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.EndRide(context.Background(), "ride-1")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if !errors.Is(err, service.ErrRideAlreadyEnded) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly 1 successful end, got %d", successes)
	}
	if rideRepo.GetRide("ride-1").Status != domain.RideStatusCompleted {
		t.Error("ride should be COMPLETED")
	}
}

func TestEndRide_NotFound(t *testing.T) {
	t.Parallel()

	svc := newDispatch(NewMockDriverRepository(), NewMockRideRepository(), NewMockRiderRepository())

	_, err := svc.EndRide(context.Background(), "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown ride")
	}
}

// ──────────────────────────────────────────────
// LOOKUPS AND CACHING
// ──────────────────────────────────────────────

func TestGetRide_ServesFromCacheOnRepeat(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	rideRepo.AddRide(&domain.Ride{
		ID:       "ride-1",
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   domain.RideStatusBooked,
		Fare:     70.00,
	})

	cache := NewMockRideCache()
	calc := fare.NewCalculator(fare.NewRouteTable(fare.DefaultRoutes(), fare.DefaultDistanceKm))
	svc := service.NewDispatchService(driverRepo, rideRepo, riderRepo, calc, nil, cache, nil, zap.NewNop())

	first, err := svc.GetRide(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The second read hits the cache even if the row vanished.
	rideRepo.mu.Lock()
	delete(rideRepo.rides, "ride-1")
	rideRepo.mu.Unlock()

	second, err := svc.GetRide(context.Background(), "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID || second.Fare != first.Fare {
		t.Error("cached ride should match the original")
	}
}

func TestRideHistory_FiltersByRider(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	addRider(riderRepo, "rider-1")
	addRider(riderRepo, "rider-2")
	rideRepo.AddRide(&domain.Ride{ID: "ride-1", RiderID: "rider-1", Status: domain.RideStatusCompleted})
	rideRepo.AddRide(&domain.Ride{ID: "ride-2", RiderID: "rider-2", Status: domain.RideStatusCompleted})
	rideRepo.AddRide(&domain.Ride{ID: "ride-3", RiderID: "rider-1", Status: domain.RideStatusPaid})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	rides, err := svc.RideHistory(context.Background(), "rider-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rides) != 2 {
		t.Errorf("expected 2 rides, got %d", len(rides))
	}
	for _, r := range rides {
		if r.RiderID != "rider-1" {
			t.Errorf("unexpected ride %s for rider %s", r.ID, r.RiderID)
		}
	}
}

func TestRideHistoryByEmail(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	riderRepo.AddRider(&domain.Rider{ID: "rider-1", Email: "jo@example.com"})
	rideRepo.AddRide(&domain.Ride{ID: "ride-1", RiderID: "rider-1", Status: domain.RideStatusCompleted})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	rides, err := svc.RideHistoryByEmail(context.Background(), "jo@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rides) != 1 {
		t.Errorf("expected 1 ride, got %d", len(rides))
	}
}

func TestActiveRideForDriver(t *testing.T) {
	t.Parallel()

	driverRepo := NewMockDriverRepository()
	rideRepo := NewMockRideRepository()
	riderRepo := NewMockRiderRepository()
	driverRepo.AddDriver(&domain.Driver{ID: "driver-1", Status: domain.DriverStatusBusy})
	rideRepo.AddRide(&domain.Ride{ID: "ride-1", RiderID: "rider-1", DriverID: "driver-1", Status: domain.RideStatusInProgress})
	rideRepo.AddRide(&domain.Ride{ID: "ride-2", RiderID: "rider-2", DriverID: "driver-1", Status: domain.RideStatusPaid})

	svc := newDispatch(driverRepo, rideRepo, riderRepo)

	active, err := svc.ActiveRideForDriver(context.Background(), "driver-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active == nil || active.ID != "ride-1" {
		t.Fatalf("expected ride-1 to be active, got %+v", active)
	}

	// After the ride ends there is no active ride.
	if _, err := svc.EndRide(context.Background(), "ride-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	active, err = svc.ActiveRideForDriver(context.Background(), "driver-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != nil {
		t.Errorf("expected no active ride, got %s", active.ID)
	}
}
