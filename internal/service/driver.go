package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/repository"
)

// DriverService handles the driver directory outside the dispatch
// path: registration, listing and the administrative status override.
type DriverService struct {
	driverRepo repository.DriverRepository
	logger     *zap.Logger
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository, logger *zap.Logger) *DriverService {
	return &DriverService{driverRepo: driverRepo, logger: logger}
}

// RegisterDriverRequest contains the parameters for registering a driver.
type RegisterDriverRequest struct {
	Name         string
	Phone        string
	VehicleModel string
	VehiclePlate string
}

// Register adds a new driver to the pool in AVAILABLE status.
func (s *DriverService) Register(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	driver := &domain.Driver{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		VehicleModel: req.VehicleModel,
		VehiclePlate: req.VehiclePlate,
		Status:       domain.DriverStatusAvailable,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.Info("driver registered", zap.String("driver_id", driver.ID))
	return driver, nil
}

// GetAll retrieves all drivers.
func (s *DriverService) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}

// SetStatus is the administrative status override, e.g. a driver going
// OFFLINE. BUSY is rejected: only the dispatch acquire path may mark a
// driver busy, otherwise a driver could be BUSY with no active ride.
func (s *DriverService) SetStatus(ctx context.Context, driverID string, status domain.DriverStatus) (*domain.Driver, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}
	if status == domain.DriverStatusBusy {
		return nil, ErrCannotSetBusy
	}

	if err := s.driverRepo.UpdateStatus(ctx, driverID, status); err != nil {
		return nil, err
	}

	s.logger.Info("driver status overridden",
		zap.String("driver_id", driverID),
		zap.String("status", string(status)))

	return s.driverRepo.GetByID(ctx, driverID)
}

// ValidateDriverStatus parses a driver status string.
func ValidateDriverStatus(status string) (domain.DriverStatus, error) {
	switch domain.DriverStatus(status) {
	case domain.DriverStatusAvailable, domain.DriverStatusBusy, domain.DriverStatusOffline:
		return domain.DriverStatus(status), nil
	default:
		return "", ErrInvalidDriverStatus
	}
}
