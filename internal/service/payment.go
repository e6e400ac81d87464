package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabride/internal/domain"
	"cabride/internal/events"
	"cabride/internal/redis"
	"cabride/internal/repository"
)

// Gateway is the interface for the external payment gateway.
type Gateway interface {
	// Charge attempts to charge the given amount. The boolean is the
	// gateway's accept/decline outcome; an error means the gateway
	// itself failed.
	Charge(ctx context.Context, amount float64, method domain.PaymentMethod) (bool, error)
}

// SimulatedGateway is a stand-in gateway that always accepts.
type SimulatedGateway struct{}

// NewSimulatedGateway creates a new SimulatedGateway.
func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

// Charge always accepts.
func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method domain.PaymentMethod) (bool, error) {
	return true, nil
}

// PaymentService attaches at most one payment to a completed ride.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	rideRepo    repository.RideRepository
	gateway     Gateway
	rideCache   redis.RideCacheInterface
	publisher   *events.Publisher
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService. rideCache and
// publisher may be nil.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	rideRepo repository.RideRepository,
	gateway Gateway,
	rideCache redis.RideCacheInterface,
	publisher *events.Publisher,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		rideRepo:    rideRepo,
		gateway:     gateway,
		rideCache:   rideCache,
		publisher:   publisher,
		logger:      logger,
	}
}

// ProcessPaymentRequest contains the parameters for processing a payment.
type ProcessPaymentRequest struct {
	RideID  string
	RiderID string
	Method  domain.PaymentMethod
}

// ProcessPayment charges the ride's fare through the gateway and
// records the payment. Guards, in order: the ride must exist, the
// caller must be its rider, the ride must be COMPLETED and unpaid.
// On gateway failure nothing is persisted, so the call is safe to
// retry. The unique payments-per-ride constraint closes the
// concurrent double-submission race; the loser sees ErrAlreadyPaid.
func (s *PaymentService) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*domain.Payment, error) {
	if req.RideID == "" {
		return nil, ErrInvalidRideID
	}
	if req.RiderID == "" {
		return nil, ErrInvalidRiderID
	}

	method, err := ValidatePaymentMethod(string(req.Method))
	if err != nil {
		return nil, err
	}

	ride, err := s.rideRepo.GetByID(ctx, req.RideID)
	if err != nil {
		return nil, err
	}

	if ride.RiderID != req.RiderID {
		s.logger.Warn("payment rejected: caller is not the ride's rider",
			zap.String("ride_id", req.RideID),
			zap.String("rider_id", req.RiderID))
		return nil, ErrNotRideParticipant
	}

	switch ride.Status {
	case domain.RideStatusCompleted:
	case domain.RideStatusPaid:
		return nil, ErrAlreadyPaid
	default:
		return nil, ErrRideNotCompleted
	}

	if _, err := s.paymentRepo.GetByRideID(ctx, req.RideID); err == nil {
		return nil, ErrAlreadyPaid
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	accepted, err := s.gateway.Charge(ctx, ride.Fare, method)
	if err != nil || !accepted {
		s.logger.Error("payment gateway failed",
			zap.String("ride_id", req.RideID),
			zap.Float64("amount", ride.Fare),
			zap.Error(err))
		return nil, ErrPaymentGateway
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		RideID:    ride.ID,
		RiderID:   ride.RiderID,
		Amount:    ride.Fare,
		Method:    method,
		Status:    domain.PaymentStatusSuccess,
		Timestamp: time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}

	if err := s.rideRepo.MarkPaid(ctx, ride.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The ride left COMPLETED through a competing caller that
			// already moved it to PAID; our payment row still stands.
			s.logger.Warn("ride already marked paid",
				zap.String("ride_id", ride.ID))
		} else {
			// Roll the payment back so a retry starts clean instead of
			// tripping over ErrAlreadyPaid with the ride still stuck
			// in COMPLETED.
			if delErr := s.paymentRepo.Delete(ctx, payment.ID); delErr != nil {
				s.logger.Error("failed to roll back payment after mark-paid failure",
					zap.String("payment_id", payment.ID), zap.Error(delErr))
			}
			return nil, err
		}
	}

	if s.rideCache != nil {
		_ = s.rideCache.InvalidateRide(ctx, ride.ID)
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("ride_id", ride.ID),
		zap.Float64("amount", payment.Amount))

	s.publisher.PaymentRecorded(ctx, payment)

	return payment, nil
}

// GetReceipt retrieves the payment attached to a ride.
func (s *PaymentService) GetReceipt(ctx context.Context, rideID string) (*domain.Payment, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}

	if _, err := s.rideRepo.GetByID(ctx, rideID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByRideID(ctx, rideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ValidatePaymentMethod parses a payment method string. An empty
// method defaults to UPI.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(method) {
	case domain.PaymentMethodCash, domain.PaymentMethodCard,
		domain.PaymentMethodWallet, domain.PaymentMethodUPI:
		return domain.PaymentMethod(method), nil
	case "":
		return domain.PaymentMethodUPI, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
