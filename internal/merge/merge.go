package merge

import (
	"github.com/quartersapp/quarters/internal/models"
)

// Policy определяет правила слияния отложенных мутаций.
// Слияние применяется при постановке в очередь: новая мутация
// сливаемого вида для пары (игра, вид) поглощается уже стоящим
// в очереди элементом вместо добавления дубликата.
type Policy struct {
	progressFields map[string]struct{}
	mergeable      map[models.MutationKind]struct{}
}

// DefaultProgressFields числовые поля прогресса, которые при слиянии
// берутся как максимум двух значений: прогресс раунда не может
// откатываться назад, даже если правки пришли не по порядку.
var DefaultProgressFields = []string{"hole", "quarters_played"}

// NewPolicy создает политику слияния по умолчанию:
// "progress" сливается, "finalize" нет.
func NewPolicy() *Policy {
	return NewPolicyWithFields(DefaultProgressFields)
}

// NewPolicyWithFields создает политику с заданным набором полей прогресса.
func NewPolicyWithFields(progressFields []string) *Policy {
	fields := make(map[string]struct{}, len(progressFields))
	for _, f := range progressFields {
		fields[f] = struct{}{}
	}

	return &Policy{
		progressFields: fields,
		mergeable: map[models.MutationKind]struct{}{
			models.KindProgress: {},
		},
	}
}

// Mergeable сообщает, схлопываются ли мутации данного вида
// в один элемент очереди.
func (p *Policy) Mergeable(kind models.MutationKind) bool {
	_, ok := p.mergeable[kind]
	return ok
}

// Merge выполняет глубокое слияние incoming в existing и возвращает
// новый payload. Исходные map не изменяются.
// Правила:
//  1. Вложенные map объединяются по ключам рекурсивно.
//  2. При конфликте скаляров выигрывает incoming (последняя правка).
//  3. Числовые поля прогресса берутся как max(existing, incoming).
//
// Payload проходит через JSON при персистенции, поэтому числа могут
// возвращаться как float64; правило максимума сравнивает int/int64/float64
// единообразно.
func (p *Policy) Merge(existing, incoming map[string]any) map[string]any {
	result := cloneMap(existing)
	if result == nil {
		result = make(map[string]any, len(incoming))
	}

	for key, incomingVal := range incoming {
		existingVal, ok := result[key]
		if !ok {
			result[key] = cloneValue(incomingVal)
			continue
		}

		// Обе стороны map - объединяем рекурсивно
		existingMap, existingIsMap := existingVal.(map[string]any)
		incomingMap, incomingIsMap := incomingVal.(map[string]any)
		if existingIsMap && incomingIsMap {
			result[key] = p.Merge(existingMap, incomingMap)
			continue
		}

		// Поле прогресса - берем максимум, чтобы прогресс не откатывался
		if _, isProgress := p.progressFields[key]; isProgress {
			if merged, ok := maxNumeric(existingVal, incomingVal); ok {
				result[key] = merged
				continue
			}
		}

		// Конфликт скаляров - выигрывает новая правка
		result[key] = cloneValue(incomingVal)
	}

	return result
}

// maxNumeric возвращает большее из двух числовых значений,
// сохраняя исходное представление победителя.
// Второй результат false, если хотя бы одно значение не числовое.
func maxNumeric(a, b any) (any, bool) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, false
	}
	if bf >= af {
		return b, true
	}
	return a, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return cloneMap(typed)
	case []any:
		dst := make([]any, len(typed))
		for i, item := range typed {
			dst[i] = cloneValue(item)
		}
		return dst
	default:
		return v
	}
}
