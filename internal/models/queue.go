package models

import "time"

// MutationKind тип отложенной мутации.
// Определяет политику слияния при постановке в очередь
// и маршрутизацию на эндпоинт сервера при отправке.
type MutationKind string

const (
	// KindProgress инкрементальное обновление состояния раунда
	// (текущая лунка, удары, квотеры). Сливаемый вид: повторные
	// правки одной игры схлопываются в один элемент очереди.
	KindProgress MutationKind = "progress"
	// KindFinalize одноразовая мутация завершения раунда.
	// Не сливается: каждый вызов доставляется отдельным элементом.
	KindFinalize MutationKind = "finalize"
)

// Priority подсказка порядка обработки элемента очереди
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// QueueItem представляет одну отложенную мутацию в очереди синхронизации.
// Создается при enqueue, обновляется при слиянии payload или после
// неудачной попытки отправки, удаляется после успешной доставки
// либо после фатальной (permanent) ошибки.
type QueueItem struct {
	CreatedAt     time.Time      `json:"created_at"`      // CreatedAt время постановки в очередь
	UpdatedAt     time.Time      `json:"updated_at"`      // UpdatedAt время последнего слияния payload
	LastAttemptAt time.Time      `json:"last_attempt_at"` // LastAttemptAt время последней попытки отправки
	Payload       map[string]any `json:"payload"`         // Payload данные мутации, форма определяется Kind
	ID            string         `json:"id"`              // ID уникальный идентификатор элемента (UUID)
	EntityKey     string         `json:"entity_key"`      // EntityKey идентификатор игры (агрегата)
	Kind          MutationKind   `json:"kind"`            // Kind вид мутации
	LastError     string         `json:"last_error"`      // LastError текст последней ошибки, очищается при успехе
	Priority      Priority       `json:"priority"`        // Priority подсказка порядка (high/normal/low)
	Attempts      int            `json:"attempts"`        // Attempts число выполненных попыток отправки
}

// Clone создает глубокую копию элемента очереди.
// Payload копируется рекурсивно, чтобы изменения у вызывающего
// не задели персистентное состояние очереди.
func (i *QueueItem) Clone() *QueueItem {
	c := *i
	c.Payload = clonePayload(i.Payload)
	return &c
}

func clonePayload(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			dst[k] = clonePayload(nested)
			continue
		}
		dst[k] = v
	}
	return dst
}
