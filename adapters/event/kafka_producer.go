package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/portify/portify/internal/config"
)

const TopicPortfolioViews = "portfolio.view.events"

// PortfolioViewPayload is the message the server publishes for every public
// portfolio hit. The worker consumes it and maintains the Redis counters.
type PortfolioViewPayload struct {
	Slug     string    `json:"slug"`
	ViewedAt time.Time `json:"viewed_at"`
}

type KafkaProducerClient struct {
	ViewEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	viewWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioViews,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ViewEventsWriter: viewWriter}, nil
}

func (c *KafkaProducerClient) PublishPortfolioView(ctx context.Context, slug string) error {
	payload := PortfolioViewPayload{Slug: slug, ViewedAt: time.Now().UTC()}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal view event: %w", err)
	}

	return c.ViewEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(slug),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ViewEventsWriter != nil {
		c.ViewEventsWriter.Close()
	}
}
