package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// defaultQuarterValue ставка за квотер по умолчанию, в центах
const defaultQuarterValue = 25

func (c *Cli) runStart(ctx context.Context) error {
	c.io.Println("=== New Round ===")
	c.io.Println()

	course, err := c.io.ReadInput("Course name: ")
	if err != nil {
		return fmt.Errorf("failed to read course name: %w", err)
	}
	if course == "" {
		return fmt.Errorf("course name cannot be empty")
	}

	playersRaw, err := c.io.ReadInput("Players (comma-separated): ")
	if err != nil {
		return fmt.Errorf("failed to read players: %w", err)
	}
	names := splitPlayers(playersRaw)
	if len(names) < 2 {
		return fmt.Errorf("a round needs at least two players")
	}

	quarterRaw, err := c.io.ReadInput(fmt.Sprintf("Quarter value in cents [%d]: ", defaultQuarterValue))
	if err != nil {
		return fmt.Errorf("failed to read quarter value: %w", err)
	}
	quarterValue := defaultQuarterValue
	if quarterRaw != "" {
		quarterValue, err = strconv.Atoi(quarterRaw)
		if err != nil || quarterValue <= 0 {
			return fmt.Errorf("quarter value must be a positive number, got %q", quarterRaw)
		}
	}

	gameID := uuid.New().String()

	players := make([]any, 0, len(names))
	for _, name := range names {
		players = append(players, map[string]any{
			"name":     name,
			"strokes":  0,
			"quarters": 0,
		})
	}

	// Снапшот пишется до отправки: раунд должен быть виден локально
	// даже если сервер недоступен
	state := map[string]any{
		"game_id":       gameID,
		"course_name":   course,
		"players":       players,
		"hole":          1,
		"quarter_value": quarterValue,
		"finalized":     false,
	}
	if err := c.syncService.SaveLocalSnapshot(ctx, gameID, state); err != nil {
		return fmt.Errorf("failed to save local state: %w", err)
	}

	payload := map[string]any{
		"course_name":   course,
		"players":       players,
		"hole":          1,
		"quarter_value": quarterValue,
	}
	result, err := c.syncService.SyncMutation(ctx, gameID, payload)
	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Round started!")
	c.io.Printf("Game ID: %s\n", gameID)
	if result.Synced {
		c.io.Println("Round registered on server.")
	} else {
		c.io.Println("Round queued, will sync when the server is reachable.")
	}
	c.io.Println()
	c.io.Printf("Record each hole with 'quarters score %s'.\n", gameID)

	return nil
}
