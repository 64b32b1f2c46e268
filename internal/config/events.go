package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/formcraft/formbuilder-api/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled      bool
	Publisher    string // kafka, or memory to log events in process
	KafkaBrokers string
	Topic        string
}

// GetKafkaBrokers returns Kafka brokers as a slice
func (c *EventConfig) GetKafkaBrokers() []string {
	return strings.Split(c.KafkaBrokers, ",")
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled")
		return events.NoopEventPublisher{}, nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.Topic)

		return events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.Topic,
			Logger:       logger,
		})
	case "memory":
		logger.Info("Using in-memory event publisher", "topic", c.Topic)
		publisher, pubSub := events.NewInMemoryEventPublisher(c.Topic, logger)
		if err := events.LogEvents(context.Background(), pubSub, c.Topic, logger); err != nil {
			publisher.Close()
			return nil, err
		}
		return publisher, nil
	default:
		logger.Warn("Unknown event publisher type, publishing disabled", "publisher", c.Publisher)
		return events.NoopEventPublisher{}, nil
	}
}
