package models

import "time"

// SyncError запись об ошибке синхронизации для пользовательской
// диагностики. Хранится в ограниченном буфере (последние N записей),
// записи по конкретной игре очищаются при ее следующей успешной отправке.
type SyncError struct {
	Timestamp time.Time `json:"timestamp"`  // Timestamp момент фиксации ошибки
	EntityKey string    `json:"entity_key"` // EntityKey игра, к которой относится ошибка
	Message   string    `json:"message"`    // Message текст ошибки
}

// SyncStatus производное состояние синхронизации.
// Не хранится: вычисляется из очереди, сигнала связи и буфера ошибок
// и рассылается подписчикам при каждом изменении.
type SyncStatus struct {
	LastSyncAt   time.Time   `json:"last_sync_at"`  // LastSyncAt время последней успешной отправки
	RecentErrors []SyncError `json:"recent_errors"` // RecentErrors последние ошибки синхронизации
	PendingCount int         `json:"pending_count"` // PendingCount число элементов в очереди
	IsProcessing bool        `json:"is_processing"` // IsProcessing идет ли сейчас проход очереди
	IsOnline     bool        `json:"is_online"`     // IsOnline доступен ли сервер
}

// ProcessResult итог одного прохода очереди синхронизации
type ProcessResult struct {
	RetryingIDs []string `json:"retrying_ids"` // RetryingIDs элементы, оставшиеся на повтор
	SyncedCount int      `json:"synced_count"` // SyncedCount успешно доставлено
	FailedCount int      `json:"failed_count"` // FailedCount завершилось ошибкой (включая фатальные)
	Skipped     bool     `json:"skipped"`      // Skipped проход уже шел, вызов пропущен
	Offline     bool     `json:"offline"`      // Offline сервер недоступен, попытки не выполнялись
}

// MutationResult итог комбинированной операции syncMutation:
// немедленная отправка при наличии связи с откатом в очередь при неудаче.
type MutationResult struct {
	Message string `json:"message"` // Message человекочитаемое описание итога
	Success bool   `json:"success"` // Success операция принята (доставлена или поставлена в очередь)
	Synced  bool   `json:"synced"`  // Synced доставлена на сервер немедленно
	Queued  bool   `json:"queued"`  // Queued поставлена в очередь для фоновой отправки
}
