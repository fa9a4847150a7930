package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/portify/portify/adapters/event"
	"github.com/portify/portify/adapters/persistence"
	"github.com/portify/portify/internal/config"
	"github.com/portify/portify/internal/domain/portfolio"
	"github.com/portify/portify/pkg/logger"
)

// errBadViewEvent marks messages that can never succeed. They get committed
// and skipped; anything else is left uncommitted for redelivery.
var errBadViewEvent = errors.New("view event is not usable")

func handleViewEvent(ctx context.Context, counter portfolio.ViewCounter, value []byte) error {
	var payload event.PortfolioViewPayload
	if err := json.Unmarshal(value, &payload); err != nil {
		return fmt.Errorf("%w: %v", errBadViewEvent, err)
	}
	if payload.Slug == "" {
		return fmt.Errorf("%w: missing slug", errBadViewEvent)
	}
	if _, err := counter.Increment(ctx, payload.Slug); err != nil {
		return fmt.Errorf("cannot count view for slug %s: %w", payload.Slug, err)
	}
	return nil
}

func main() {
	fmt.Println("Starting Portify Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Redis holds the per-slug view counters.
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	viewCounter := persistence.NewRedisPortfolioCache(redisClient, cfg.Redis.CacheTTL, appLogger)

	// Kafka Consumer
	viewConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioViews,
		GroupID:  "portfolio-view-counter-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer viewConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicPortfolioViews)

	ctx := context.Background()
	for {
		msg, err := viewConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		if err := handleViewEvent(ctx, viewCounter, msg.Value); err != nil {
			if errors.Is(err, errBadViewEvent) {
				log.Printf("ERROR: Skipping view event: %v", err)
				commitMessage(viewConsumer, msg)
				continue
			}
			log.Printf("ERROR: %v", err)
			continue
		}

		commitMessage(viewConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
