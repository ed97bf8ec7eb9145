// Command relay drains pending outbox events to the message broker.
// Each published event is marked completed so the cleanup job can purge
// it after its retention window; an event that keeps failing is marked
// failed after exhausting its retries. Run it on a schedule alongside
// cleanup.
package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/repo"
	"github.com/CimeM/shellLeatherStore/internal/dispatch"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// Config for the relay job.
type Config struct {
	SpannerDB  string
	AMQPURL    string
	Queue      string
	BatchSize  int64
	MaxRetries int64
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.StringVar(&config.AMQPURL, "amqp-url", "", "AMQP broker URL (required)")
	flag.StringVar(&config.Queue, "queue", "storefront_events", "Queue to publish events to")
	flag.Int64Var(&config.BatchSize, "batch-size", 100, "Events fetched per batch")
	flag.Int64Var(&config.MaxRetries, "max-retries", 5, "Publish attempts before an event is marked failed")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}
	if config.AMQPURL == "" {
		log.Fatal("Error: -amqp-url flag is required")
	}

	ctx := context.Background()

	if err := relay(ctx, config); err != nil {
		log.Fatalf("Relay failed: %v", err)
	}
}

func relay(ctx context.Context, config Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return err
	}
	defer client.Close()

	publisher, err := dispatch.NewAMQPEventPublisher(config.AMQPURL, config.Queue, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	clk := clock.NewRealClock()
	outboxRepo := repo.NewOutboxRepo(client, clk)

	r := dispatch.NewRelay(
		outboxRepo,
		publisher,
		committer.NewCommitter(client),
		clk,
		logger,
		config.BatchSize,
		config.MaxRetries,
	)

	published, err := r.Run(ctx)
	if err != nil {
		return err
	}

	log.Printf("Relay completed: published %d events", published)
	return nil
}
