package api

import "time"

// GameState представляет состояние раунда в ответах сервера.
// UpdatedAt заполняется сервером и является авторитетной меткой
// для сравнения с локальным снапшотом клиента.
type GameState struct {
	UpdatedAt    time.Time     `json:"updated_at"`
	GameID       string        `json:"game_id"`
	CourseName   string        `json:"course_name"`
	Players      []PlayerState `json:"players"`
	Hole         int           `json:"hole"`
	QuarterValue int           `json:"quarter_value"`
	Finalized    bool          `json:"finalized"`
}

// PlayerState счет одного игрока в раунде
type PlayerState struct {
	Name     string `json:"name" validate:"required"`
	Strokes  int    `json:"strokes"`
	Quarters int    `json:"quarters"`
}

// ProgressRequest инкрементальное обновление состояния раунда.
// Все поля опциональны: клиент шлет слитый payload накопленных правок,
// сервер применяет только непустые поля. Повторная доставка одинакового
// payload обязана быть идемпотентной (upsert по game_id).
type ProgressRequest struct {
	CourseName   string        `json:"course_name,omitempty"`
	Players      []PlayerState `json:"players,omitempty" validate:"omitempty,dive"`
	Hole         int           `json:"hole,omitempty" validate:"omitempty,min=1,max=18"`
	QuarterValue int           `json:"quarter_value,omitempty" validate:"omitempty,min=1"`
}

// FinalizeRequest запрос на завершение и расчет раунда.
// Может нести финальные счета; повторный finalize уже
// завершенного раунда - no-op.
type FinalizeRequest struct {
	Players []PlayerState `json:"players,omitempty" validate:"omitempty,dive"`
}

// GameResponse ответ сервера с актуальным состоянием раунда
type GameResponse struct {
	Game GameState `json:"game"`
}

// HealthResponse ответ эндпоинта проверки живости
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
