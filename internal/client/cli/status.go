package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Quarters Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Account: not authenticated")
		c.io.Println()
		c.io.Println("Run 'quarters login' to authenticate.")
		return nil
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Printf("Account: %s\n", session.Username)
	c.io.Printf("Session expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))

	c.io.Println()
	if c.connectivity.IsOnline() {
		c.io.Println("Server: online")
	} else {
		c.io.Println("Server: offline, changes are queued locally")
	}

	lastSync, err := c.syncService.LastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if !lastSync.IsZero() {
		c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	if pending > 0 {
		c.io.Printf("Pending: %d mutation(s) waiting for sync\n", pending)
		c.io.Println()
		c.io.Println("Run 'quarters sync' to push them now.")
	} else {
		c.io.Println("Pending: none, all changes delivered")
	}

	syncErrors, err := c.syncService.SyncErrors(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync errors: %w", err)
	}
	if len(syncErrors) > 0 {
		c.io.Println()
		c.io.Println("Recent sync errors:")
		for _, e := range syncErrors {
			c.io.Printf("  %s  %s: %s\n", e.Timestamp.Format("15:04:05"), e.EntityKey, e.Message)
		}
	}

	return nil
}
