// Command cleanup purges old rows that accumulate during normal
// operation: processed outbox events past their retention window and
// carts abandoned long enough that the browser session is certainly
// gone. Deleting a cart cascades to its items.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// Config for the cleanup job.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	CartRetentionDays      int
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed outbox events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed outbox events")
	flag.IntVar(&config.CartRetentionDays, "cart-retention", 60, "Retention days for idle carts")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := cleanup(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanup(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -config.CompletedRetentionDays)
	failedCutoff := now.AddDate(0, 0, -config.FailedRetentionDays)
	cartCutoff := now.AddDate(0, 0, -config.CartRetentionDays)

	log.Printf("Starting cleanup...")
	log.Printf("  Completed events cutoff: %s (retention: %d days)", completedCutoff.Format(time.RFC3339), config.CompletedRetentionDays)
	log.Printf("  Failed events cutoff: %s (retention: %d days)", failedCutoff.Format(time.RFC3339), config.FailedRetentionDays)
	log.Printf("  Idle carts cutoff: %s (retention: %d days)", cartCutoff.Format(time.RFC3339), config.CartRetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	outboxStmt := spanner.Statement{
		SQL: `DELETE FROM outbox_events
		      WHERE (status = 'completed' AND processed_at < @completedCutoff)
		         OR (status = 'failed' AND processed_at < @failedCutoff)`,
		Params: map[string]interface{}{
			"completedCutoff": completedCutoff,
			"failedCutoff":    failedCutoff,
		},
	}
	cartStmt := spanner.Statement{
		SQL: `DELETE FROM carts WHERE updated_at < @cartCutoff`,
		Params: map[string]interface{}{
			"cartCutoff": cartCutoff,
		},
	}

	if config.DryRun {
		outboxCount := spanner.Statement{
			SQL: `SELECT COUNT(*) FROM outbox_events
			      WHERE (status = 'completed' AND processed_at < @completedCutoff)
			         OR (status = 'failed' AND processed_at < @failedCutoff)`,
			Params: outboxStmt.Params,
		}
		cartCount := spanner.Statement{
			SQL:    `SELECT COUNT(*) FROM carts WHERE updated_at < @cartCutoff`,
			Params: cartStmt.Params,
		}
		if err := dryRunCount(ctx, client, "outbox events", outboxCount); err != nil {
			return err
		}
		return dryRunCount(ctx, client, "idle carts", cartCount)
	}

	if err := deleteRows(ctx, client, "outbox events", outboxStmt); err != nil {
		return err
	}
	return deleteRows(ctx, client, "idle carts", cartStmt)
}

func dryRunCount(ctx context.Context, client *spanner.Client, label string, stmt spanner.Statement) error {
	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil
		}
		return fmt.Errorf("failed to count %s: %w", label, err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return fmt.Errorf("failed to parse count: %w", err)
	}

	log.Printf("DRY RUN: Would delete %d %s", count, label)
	return nil
}

func deleteRows(ctx context.Context, client *spanner.Client, label string, stmt spanner.Statement) error {
	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		rowCount, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", label, err)
		}
		log.Printf("Deleted %d %s", rowCount, label)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return nil
}
