package app

import (
	"go.uber.org/zap"

	"cabride/internal/config"
	"cabride/internal/events"
)

// NewEventPublisher builds the Kafka publisher for lifecycle events.
// Returns nil when the event stream is disabled; services treat a nil
// publisher as a no-op.
func NewEventPublisher(cfg config.KafkaConfig, logger *zap.Logger) *events.Publisher {
	if !cfg.Enabled {
		return nil
	}
	logger.Info("event stream enabled",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic))
	return events.NewPublisher(cfg.Brokers, cfg.Topic, logger)
}
