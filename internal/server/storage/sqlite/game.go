package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quartersapp/quarters/internal/models"
	"github.com/quartersapp/quarters/internal/server/storage"
)

// UpsertProgress applies an incremental update to a game, creating the
// row on first delivery. Only set fields of the update are applied.
// Hole is monotonic: an older payload cannot move it backwards, so
// out-of-order and repeated deliveries are safe.
func (s *Storage) UpsertProgress(ctx context.Context, userID string, update *models.GameProgress) (*models.GameState, error) {
	existing, err := s.getGameAnyOwner(ctx, update.GameID)
	if err != nil && !errors.Is(err, storage.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}

	if existing != nil {
		// Раунд чужого пользователя неотличим от несуществующего
		if existing.ownerID != userID {
			return nil, storage.ErrGameNotFound
		}
		if existing.state.Finalized {
			return nil, storage.ErrGameFinalized
		}
	}

	// Собираем итоговое состояние в Go: применяются только
	// переданные поля, лунка не откатывается
	merged := mergeProgress(existing, update)
	merged.UpdatedAt = time.Now()

	playersJSON, err := json.Marshal(merged.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal players: %w", err)
	}

	// ON CONFLICT с MAX(hole) оставляет запись идемпотентной даже при
	// конкурентной повторной доставке того же payload
	query := `
		INSERT INTO games (game_id, user_id, course_name, players, hole, quarter_value, finalized, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)
		ON CONFLICT(game_id) DO UPDATE SET
			course_name = excluded.course_name,
			players = excluded.players,
			hole = MAX(hole, excluded.hole),
			quarter_value = excluded.quarter_value,
			updated_at = excluded.updated_at
		WHERE user_id = excluded.user_id AND finalized = 0
	`

	_, err = s.db.ExecContext(ctx, query,
		merged.GameID,
		userID,
		merged.CourseName,
		string(playersJSON),
		merged.Hole,
		merged.QuarterValue,
		merged.UpdatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert game: %w", err)
	}

	return s.GetGame(ctx, userID, merged.GameID)
}

// FinalizeGame marks a game as settled. Finalizing an already
// finalized game is a no-op that returns the stored state.
func (s *Storage) FinalizeGame(ctx context.Context, userID, gameID string, players []models.PlayerScore) (*models.GameState, error) {
	existing, err := s.getGameAnyOwner(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if existing.ownerID != userID {
		return nil, storage.ErrGameNotFound
	}

	if existing.state.Finalized {
		return existing.state, nil
	}

	finalPlayers := existing.state.Players
	if len(players) > 0 {
		finalPlayers = players
	}

	playersJSON, err := json.Marshal(finalPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		UPDATE games
		SET players = ?, finalized = 1, updated_at = ?
		WHERE game_id = ? AND user_id = ?
	`

	if _, err := s.db.ExecContext(ctx, query, string(playersJSON), time.Now().Unix(), gameID, userID); err != nil {
		return nil, fmt.Errorf("failed to finalize game: %w", err)
	}

	return s.GetGame(ctx, userID, gameID)
}

// GetGame retrieves the authoritative state of a game
func (s *Storage) GetGame(ctx context.Context, userID, gameID string) (*models.GameState, error) {
	query := `
		SELECT game_id, user_id, course_name, players, hole, quarter_value, finalized, updated_at
		FROM games
		WHERE game_id = ? AND user_id = ?
	`

	owned, err := s.scanGame(s.db.QueryRowContext(ctx, query, gameID, userID))
	if err != nil {
		return nil, err
	}
	return owned.state, nil
}

// ownedGame строка games вместе с владельцем: user_id не входит
// в models.GameState, но нужен для проверки доступа
type ownedGame struct {
	state   *models.GameState
	ownerID string
}

// getGameAnyOwner читает раунд без фильтра по владельцу
func (s *Storage) getGameAnyOwner(ctx context.Context, gameID string) (*ownedGame, error) {
	query := `
		SELECT game_id, user_id, course_name, players, hole, quarter_value, finalized, updated_at
		FROM games
		WHERE game_id = ?
	`

	return s.scanGame(s.db.QueryRowContext(ctx, query, gameID))
}

// scanGame читает одну строку games
func (s *Storage) scanGame(row *sql.Row) (*ownedGame, error) {
	state := &models.GameState{}
	var ownerID, playersJSON string
	var finalized int
	var updatedAt int64

	err := row.Scan(
		&state.GameID,
		&ownerID,
		&state.CourseName,
		&playersJSON,
		&state.Hole,
		&state.QuarterValue,
		&finalized,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err := json.Unmarshal([]byte(playersJSON), &state.Players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}

	state.Finalized = finalized != 0
	state.UpdatedAt = time.Unix(updatedAt, 0)

	return &ownedGame{state: state, ownerID: ownerID}, nil
}

// mergeProgress применяет заполненные поля правки к существующему
// состоянию. Для нового раунда незаполненные поля получают дефолты.
func mergeProgress(existing *ownedGame, update *models.GameProgress) *models.GameState {
	merged := &models.GameState{
		GameID:       update.GameID,
		Hole:         1,
		QuarterValue: 25,
		Players:      []models.PlayerScore{},
	}
	if existing != nil {
		clone := *existing.state
		merged = &clone
	}

	if update.CourseName != "" {
		merged.CourseName = update.CourseName
	}
	if update.Players != nil {
		merged.Players = update.Players
	}
	if update.Hole > merged.Hole {
		merged.Hole = update.Hole
	}
	if update.QuarterValue > 0 {
		merged.QuarterValue = update.QuarterValue
	}

	return merged
}
