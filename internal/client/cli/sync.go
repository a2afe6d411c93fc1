package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}
	if pending == 0 {
		c.io.Println("Nothing to sync, all changes delivered.")
		return nil
	}

	c.io.Printf("Pushing %d pending mutation(s)...\n", pending)
	c.io.Println()

	result, err := c.syncService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	switch {
	case result.Offline:
		c.io.Println("Server unreachable or session expired, mutations kept in queue.")
	case result.Skipped:
		c.io.Println("Sync already in progress.")
	default:
		c.io.Printf("Synced:   %d\n", result.SyncedCount)
		c.io.Printf("Failed:   %d\n", result.FailedCount)
		c.io.Printf("Retrying: %d\n", len(result.RetryingIDs))
		if result.SyncedCount == pending {
			c.io.Println()
			c.io.Println("✓ All changes delivered to the server.")
		}
	}

	return nil
}
