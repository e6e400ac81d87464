package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"cabride/internal/domain"
)

// Event types emitted on the ride lifecycle topic.
const (
	TypeRideBooked      = "ride.booked"
	TypeRideCompleted   = "ride.completed"
	TypePaymentRecorded = "payment.recorded"
	TypeRatingSubmitted = "rating.submitted"
)

// Envelope wraps every published event.
type Envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// Publisher emits ride lifecycle events to Kafka. Publishing is
// fire-and-forget: a broker failure is logged, never surfaced to the
// caller, so dispatch outcomes do not depend on the broker. A nil
// *Publisher is valid and drops all events.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher creates a Publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

// RideBooked publishes a ride.booked event keyed by ride id.
func (p *Publisher) RideBooked(ctx context.Context, ride *domain.Ride) {
	p.publish(ctx, TypeRideBooked, ride.ID, rideEvent(ride))
}

// RideCompleted publishes a ride.completed event keyed by ride id.
func (p *Publisher) RideCompleted(ctx context.Context, ride *domain.Ride) {
	p.publish(ctx, TypeRideCompleted, ride.ID, rideEvent(ride))
}

// PaymentRecorded publishes a payment.recorded event keyed by ride id.
func (p *Publisher) PaymentRecorded(ctx context.Context, payment *domain.Payment) {
	p.publish(ctx, TypePaymentRecorded, payment.RideID, map[string]any{
		"payment_id": payment.ID,
		"ride_id":    payment.RideID,
		"amount":     payment.Amount,
		"method":     payment.Method,
		"status":     payment.Status,
	})
}

// RatingSubmitted publishes a rating.submitted event keyed by ride id.
func (p *Publisher) RatingSubmitted(ctx context.Context, rating *domain.Rating) {
	p.publish(ctx, TypeRatingSubmitted, rating.RideID, map[string]any{
		"rating_id": rating.ID,
		"ride_id":   rating.RideID,
		"rater_id":  rating.RaterID,
		"rated_id":  rating.RatedID,
		"score":     rating.Score,
	})
}

func rideEvent(ride *domain.Ride) map[string]any {
	return map[string]any{
		"ride_id":     ride.ID,
		"rider_id":    ride.RiderID,
		"driver_id":   ride.DriverID,
		"source":      ride.Source,
		"destination": ride.Destination,
		"fare":        ride.Fare,
		"status":      ride.Status,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType, key string, payload any) {
	if p == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal event payload",
			zap.String("type", eventType), zap.Error(err))
		return
	}

	envelope, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		p.logger.Error("failed to marshal event envelope",
			zap.String("type", eventType), zap.Error(err))
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: envelope,
	}); err != nil {
		p.logger.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.String("key", key),
			zap.Error(err))
	}
}
