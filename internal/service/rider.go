package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/repository"
)

// RiderService manages the rider directory.
type RiderService struct {
	riderRepo repository.RiderRepository
	logger    *zap.Logger
}

// NewRiderService creates a new RiderService.
func NewRiderService(riderRepo repository.RiderRepository, logger *zap.Logger) *RiderService {
	return &RiderService{riderRepo: riderRepo, logger: logger}
}

// RegisterRiderRequest contains the parameters for registering a rider.
type RegisterRiderRequest struct {
	Name  string
	Email string
	Phone string
}

// Register creates a rider account. Emails are unique; a second
// registration with the same email fails with ErrEmailTaken.
func (s *RiderService) Register(ctx context.Context, req RegisterRiderRequest) (*domain.Rider, error) {
	if req.Name == "" {
		return nil, ErrInvalidRiderName
	}
	if req.Email == "" {
		return nil, ErrInvalidRiderEmail
	}

	rider := &domain.Rider{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	if err := s.riderRepo.Create(ctx, rider); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("rider registered",
		zap.String("rider_id", rider.ID),
		zap.String("email", rider.Email))

	return rider, nil
}

// GetByID returns a single rider.
func (s *RiderService) GetByID(ctx context.Context, riderID string) (*domain.Rider, error) {
	if riderID == "" {
		return nil, ErrInvalidRiderID
	}
	return s.riderRepo.GetByID(ctx, riderID)
}

// GetAll returns every registered rider.
func (s *RiderService) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	return s.riderRepo.GetAll(ctx)
}
