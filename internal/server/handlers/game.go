package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quartersapp/quarters/internal/models"
	"github.com/quartersapp/quarters/internal/server/storage"
	"github.com/quartersapp/quarters/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GameHandler обрабатывает запросы состояния раундов.
// Все эндпоинты требуют авторизации: user_id берется из контекста,
// установленного AuthMiddleware, и раунды видны только владельцу.
type GameHandler struct {
	logger   *slog.Logger
	storage  storage.GameStorage
	validate *validator.Validate
}

// NewGameHandler создает новый handler для раундов
func NewGameHandler(logger *slog.Logger, gameStorage storage.GameStorage) *GameHandler {
	return &GameHandler{
		logger:   logger,
		storage:  gameStorage,
		validate: validator.New(),
	}
}

// UpdateProgress обрабатывает PUT /api/v1/games/{gameID}/progress
// Принимает слитый payload инкрементальных правок раунда. Эндпоинт
// идемпотентен: клиентская очередь доставляет at-least-once, повтор
// уже принятого payload не меняет состояние.
func (h *GameHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	gameID := mux.Vars(r)["gameID"]
	if gameID == "" {
		h.sendError(w, "game id is required", http.StatusBadRequest)
		return
	}

	// Парсим request body
	var req api.ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode progress request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid progress request",
			slog.String("game_id", gameID), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := &models.GameProgress{
		GameID:       gameID,
		CourseName:   req.CourseName,
		Players:      toModelPlayers(req.Players),
		Hole:         req.Hole,
		QuarterValue: req.QuarterValue,
	}

	state, err := h.storage.UpsertProgress(ctx, userID, update)
	if err != nil {
		h.handleStorageError(ctx, w, err, gameID)
		return
	}

	h.logger.InfoContext(ctx, "progress applied",
		slog.String("user_id", userID),
		slog.String("game_id", gameID),
		slog.Int("hole", state.Hole))

	h.sendJSON(w, api.GameResponse{Game: toAPIGame(state)}, http.StatusOK)
}

// Finalize обрабатывает POST /api/v1/games/{gameID}/finalize
// Завершает и рассчитывает раунд. Может нести финальные счета.
// Повторный finalize уже завершенного раунда - no-op: возвращается
// сохраненное состояние без изменений.
func (h *GameHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	gameID := mux.Vars(r)["gameID"]
	if gameID == "" {
		h.sendError(w, "game id is required", http.StatusBadRequest)
		return
	}

	// Тело опционально: пустой body и JSON null означают
	// "завершить с текущими счетами"
	var req api.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(ctx, "failed to decode finalize request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid finalize request",
			slog.String("game_id", gameID), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.storage.FinalizeGame(ctx, userID, gameID, toModelPlayers(req.Players))
	if err != nil {
		h.handleStorageError(ctx, w, err, gameID)
		return
	}

	h.logger.InfoContext(ctx, "game finalized",
		slog.String("user_id", userID),
		slog.String("game_id", gameID))

	h.sendJSON(w, api.GameResponse{Game: toAPIGame(state)}, http.StatusOK)
}

// GetGame обрабатывает GET /api/v1/games/{gameID}
// Возвращает авторитетное серверное состояние раунда. Клиент
// использует updated_at для сравнения с локальным снапшотом.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user_id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	gameID := mux.Vars(r)["gameID"]
	if gameID == "" {
		h.sendError(w, "game id is required", http.StatusBadRequest)
		return
	}

	state, err := h.storage.GetGame(ctx, userID, gameID)
	if err != nil {
		h.handleStorageError(ctx, w, err, gameID)
		return
	}

	h.sendJSON(w, api.GameResponse{Game: toAPIGame(state)}, http.StatusOK)
}

// handleStorageError транслирует ошибки хранилища в HTTP статусы.
// Коды согласованы с клиентским классификатором: 404 и 409 - постоянные
// ошибки (мутация выбрасывается из очереди), 500 - временная (повтор).
// Чужой раунд отдает тот же 404, что и несуществующий.
func (h *GameHandler) handleStorageError(ctx context.Context, w http.ResponseWriter, err error, gameID string) {
	switch {
	case errors.Is(err, storage.ErrGameNotFound):
		h.logger.WarnContext(ctx, "game not found", slog.String("game_id", gameID))
		h.sendError(w, "game not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrGameFinalized):
		h.logger.WarnContext(ctx, "progress rejected: game already finalized", slog.String("game_id", gameID))
		h.sendError(w, "game already finalized", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "storage error", slog.String("game_id", gameID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

// toAPIGame конвертирует модель хранилища в API представление
func toAPIGame(state *models.GameState) api.GameState {
	players := make([]api.PlayerState, 0, len(state.Players))
	for _, p := range state.Players {
		players = append(players, api.PlayerState{
			Name:     p.Name,
			Strokes:  p.Strokes,
			Quarters: p.Quarters,
		})
	}

	return api.GameState{
		UpdatedAt:    state.UpdatedAt,
		GameID:       state.GameID,
		CourseName:   state.CourseName,
		Players:      players,
		Hole:         state.Hole,
		QuarterValue: state.QuarterValue,
		Finalized:    state.Finalized,
	}
}

// toModelPlayers конвертирует счета из API формата.
// nil сохраняется как nil: для UpsertProgress это "не менять"
func toModelPlayers(players []api.PlayerState) []models.PlayerScore {
	if players == nil {
		return nil
	}

	out := make([]models.PlayerScore, 0, len(players))
	for _, p := range players {
		out = append(out, models.PlayerScore{
			Name:     p.Name,
			Strokes:  p.Strokes,
			Quarters: p.Quarters,
		})
	}

	return out
}

// sendJSON отправляет JSON ответ
func (h *GameHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *GameHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
