package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quartersapp/quarters/internal/models"
)

func (c *Cli) runScore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: quarters score <game-id>")
	}
	gameID := args[0]

	state, ok, err := c.syncService.LoadLocalSnapshot(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to load local state: %w", err)
	}
	if !ok {
		return fmt.Errorf("no local state for game %s, run 'quarters games' to list rounds", gameID)
	}
	if finalized, _ := state["finalized"].(bool); finalized {
		return fmt.Errorf("round %s is already finalized", gameID)
	}

	players := playersFromState(state)
	if len(players) == 0 {
		return fmt.Errorf("round %s has no players", gameID)
	}

	hole := toInt(state["hole"])
	if hole < 1 {
		hole = 1
	}

	c.io.Println("=== Record Hole ===")
	c.io.Println()

	holeRaw, err := c.io.ReadInput(fmt.Sprintf("Hole [%d]: ", hole))
	if err != nil {
		return fmt.Errorf("failed to read hole: %w", err)
	}
	if holeRaw != "" {
		hole, err = strconv.Atoi(holeRaw)
		if err != nil || hole < 1 || hole > 18 {
			return fmt.Errorf("hole must be a number between 1 and 18, got %q", holeRaw)
		}
	}

	for _, player := range players {
		name, _ := player["name"].(string)

		strokesRaw, err := c.io.ReadInput(fmt.Sprintf("%s strokes: ", name))
		if err != nil {
			return fmt.Errorf("failed to read strokes: %w", err)
		}
		strokes, err := strconv.Atoi(strokesRaw)
		if err != nil || strokes < 1 {
			return fmt.Errorf("strokes must be a positive number, got %q", strokesRaw)
		}

		quartersRaw, err := c.io.ReadInput(fmt.Sprintf("%s quarters won/lost (e.g. 2 or -1) [0]: ", name))
		if err != nil {
			return fmt.Errorf("failed to read quarters: %w", err)
		}
		delta := 0
		if quartersRaw != "" {
			delta, err = strconv.Atoi(quartersRaw)
			if err != nil {
				return fmt.Errorf("quarters must be a number, got %q", quartersRaw)
			}
		}

		// Игроки снапшота мутируются на месте: те же map лежат
		// в state["players"]
		player["strokes"] = toInt(player["strokes"]) + strokes
		player["quarters"] = toInt(player["quarters"]) + delta
	}

	nextHole := hole + 1
	if nextHole > 18 {
		nextHole = 18
	}
	state["hole"] = nextHole

	if err := c.syncService.SaveLocalSnapshot(ctx, gameID, state); err != nil {
		return fmt.Errorf("failed to save local state: %w", err)
	}

	payload := map[string]any{
		"hole":    nextHole,
		"players": state["players"],
	}
	if _, err := c.syncService.Enqueue(ctx, gameID, models.KindProgress, payload); err != nil {
		return fmt.Errorf("failed to queue update: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Hole %d recorded.\n", hole)

	result, err := c.syncService.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	reportSyncOutcome(c.io, result)

	return nil
}
