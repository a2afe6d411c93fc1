package models

import "time"

// GameState представляет состояние одного раунда игры Quarters.
// Это агрегат, на который ссылается EntityKey очереди: снапшоты
// хранят его целиком, payload мутаций описывает его изменения.
type GameState struct {
	UpdatedAt    time.Time     `json:"updated_at"`    // UpdatedAt время последнего изменения (на сервере - авторитетное)
	GameID       string        `json:"game_id"`       // GameID уникальный идентификатор раунда (UUID)
	CourseName   string        `json:"course_name"`   // CourseName название поля
	Players      []PlayerScore `json:"players"`       // Players участники раунда со счетом
	Hole         int           `json:"hole"`          // Hole текущая лунка (1-18), монотонно растет
	QuarterValue int           `json:"quarter_value"` // QuarterValue ставка за квотер в центах
	Finalized    bool          `json:"finalized"`     // Finalized раунд завершен и рассчитан
}

// PlayerScore счет одного игрока в раунде
type PlayerScore struct {
	Name     string `json:"name"`     // Name имя игрока
	Strokes  int    `json:"strokes"`  // Strokes суммарное число ударов
	Quarters int    `json:"quarters"` // Quarters баланс квотеров (может быть отрицательным)
}

// GameProgress инкрементальная правка раунда на сервере.
// Нулевые значения означают "поле не передано": пустая строка,
// nil список, ноль. Сервер применяет только заполненные поля.
type GameProgress struct {
	GameID       string        // GameID идентификатор раунда
	CourseName   string        // CourseName название поля, "" - не менять
	Players      []PlayerScore // Players счета игроков, nil - не менять
	Hole         int           // Hole текущая лунка, 0 - не менять
	QuarterValue int           // QuarterValue ставка в центах, 0 - не менять
}
