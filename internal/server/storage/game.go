package storage

import (
	"context"

	"github.com/quartersapp/quarters/internal/models"
)

// GameStorage defines interface for game state persistence
type GameStorage interface {
	// UpsertProgress applies an incremental update to a game, creating
	// the row on first delivery. Only set fields of the update are
	// applied; Hole is monotonic and never moves backwards. Repeated
	// delivery of the same payload is a no-op (idempotent).
	// Returns ErrGameFinalized if the game is already settled,
	// ErrGameNotFound if the game belongs to another user.
	UpsertProgress(ctx context.Context, userID string, update *models.GameProgress) (*models.GameState, error)

	// FinalizeGame marks a game as settled, optionally applying final
	// scores. Finalizing an already finalized game is a no-op that
	// returns the stored state.
	// Returns ErrGameNotFound if the game doesn't exist for this user.
	FinalizeGame(ctx context.Context, userID, gameID string, players []models.PlayerScore) (*models.GameState, error)

	// GetGame retrieves the authoritative state of a game.
	// Returns ErrGameNotFound if the game doesn't exist for this user.
	GetGame(ctx context.Context, userID, gameID string) (*models.GameState, error)
}
