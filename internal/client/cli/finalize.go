package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/quartersapp/quarters/internal/models"
)

func (c *Cli) runFinalize(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: quarters finalize <game-id>")
	}
	gameID := args[0]

	state, ok, err := c.syncService.LoadLocalSnapshot(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to load local state: %w", err)
	}
	if !ok {
		return fmt.Errorf("no local state for game %s", gameID)
	}
	if finalized, _ := state["finalized"].(bool); finalized {
		return fmt.Errorf("round %s is already finalized", gameID)
	}

	players := playersFromState(state)
	quarterValue := toInt(state["quarter_value"])

	c.io.Println("=== Finalize Round ===")
	c.io.Println()
	c.io.Printf("Course: %s\n", stringFromState(state, "course_name"))
	c.io.Println("Settlement:")
	for _, player := range players {
		name, _ := player["name"].(string)
		quarters := toInt(player["quarters"])
		c.io.Printf("  %-16s %+d quarters (%s)\n", name, quarters, formatCents(quarters*quarterValue))
	}
	c.io.Println()

	confirm, err := c.io.ReadInput("Finalize this round? [y/N]: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		c.io.Println("Cancelled.")
		return nil
	}

	state["finalized"] = true
	if err := c.syncService.SaveLocalSnapshot(ctx, gameID, state); err != nil {
		return fmt.Errorf("failed to save local state: %w", err)
	}

	payload := map[string]any{"players": state["players"]}
	if _, err := c.syncService.Enqueue(ctx, gameID, models.KindFinalize, payload); err != nil {
		return fmt.Errorf("failed to queue finalize: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Round finalized!")

	result, err := c.syncService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	reportSyncOutcome(c.io, result)

	return nil
}
