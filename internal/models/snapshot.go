package models

import "time"

// LocalSnapshot последнее локально сохраненное состояние игры.
// Записывается при каждом локальном коммите независимо от того,
// дошла ли соответствующая мутация до сервера.
type LocalSnapshot struct {
	SavedAt   time.Time      `json:"saved_at"`   // SavedAt локальное время сохранения
	State     map[string]any `json:"state"`      // State состояние игры на момент сохранения
	EntityKey string         `json:"entity_key"` // EntityKey идентификатор игры
}

// IsNewerThan сообщает, строго ли новее локальный снапшот, чем
// состояние сервера с меткой remoteUpdatedAt. Используется после
// восстановления связи: если локальная копия новее, вызывающий
// оставляет локальные правки вместо затирания их ответом сервера.
func (s *LocalSnapshot) IsNewerThan(remoteUpdatedAt time.Time) bool {
	return s.SavedAt.After(remoteUpdatedAt)
}
