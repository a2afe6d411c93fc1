package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runGames(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return c.showGame(ctx, args[0])
	}

	c.io.Println("=== Local Rounds ===")
	c.io.Println()

	snaps, err := c.syncService.ListLocalSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rounds: %w", err)
	}

	if len(snaps) == 0 {
		c.io.Println("No rounds found.")
		c.io.Println()
		c.io.Println("Use 'quarters start' to start your first round.")
		return nil
	}

	c.io.Printf("Found %d round(s):\n", len(snaps))
	c.io.Println()

	for i, snap := range snaps {
		marker := ""
		if finalized, _ := snap.State["finalized"].(bool); finalized {
			marker = " [finalized]"
		}
		c.io.Printf("%d. %s%s\n", i+1, stringFromState(snap.State, "course_name"), marker)
		c.io.Printf("   ID:    %s\n", snap.EntityKey)
		c.io.Printf("   Hole:  %d\n", toInt(snap.State["hole"]))
		c.io.Printf("   Saved: %s\n", snap.SavedAt.Format(time.RFC3339))
		c.io.Println()
	}

	c.io.Println("Use 'quarters games <id>' to view full details.")

	return nil
}

// showGame печатает полное состояние раунда из локального снапшота
func (c *Cli) showGame(ctx context.Context, gameID string) error {
	state, ok, err := c.syncService.LoadLocalSnapshot(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to load local state: %w", err)
	}
	if !ok {
		return fmt.Errorf("no local state for game %s", gameID)
	}

	pending, err := c.syncService.HasPendingSync(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending sync: %w", err)
	}

	if err := gameTemplate.Execute(c.io, newGameView(gameID, state, pending)); err != nil {
		return fmt.Errorf("failed to render round: %w", err)
	}

	return nil
}
